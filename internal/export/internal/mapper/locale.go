// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mapper

import (
	"golang.org/x/text/language"
)

// 第一个是默认值
var dateLocales = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Japanese, "2006/1/2"},
	{language.SimplifiedChinese, "2006/1/2"},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(dateLocales))
	for _, l := range dateLocales {
		tags = append(tags, l.tag)
	}
	return language.NewMatcher(tags)
}()

// DateLayout 根据 Accept-Language 选择短日期格式，匹配不上的时候使用 en-US
func DateLayout(acceptLanguage string) string {
	_, idx := language.MatchStrings(dateMatcher, acceptLanguage)
	return dateLocales[idx].layout
}
