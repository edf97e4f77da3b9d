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
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/profile"
	"github.com/lukasjarosch/go-docx"
)

//go:embed templates/resume.docx
var docxTemplate []byte

const docxEntrySep = "  •  "

// ToDocxPlaceholders 模板里面每个占位符都是单独的一段
func ToDocxPlaceholders(p profile.Profile) docx.PlaceholderMap {
	info := p.PersonalInfo
	return docx.PlaceholderMap{
		"name":  info.FullName,
		"title": info.Title,
		"contact": strings.Join(slice.Map(contacts(info), func(idx int, src contact) string {
			if src.Href != "" && !strings.HasPrefix(src.Href, "mailto:") {
				return src.Text + ": " + src.Href
			}
			return src.Text
		}), " | "),
		"summary": info.Bio,
		"experience": strings.Join(slice.Map(p.Experiences, func(idx int, src profile.Experience) string {
			end, ok := src.EndDate()
			res := fmt.Sprintf("%s, %s (%s)", src.Title, src.Company, printDates(src.Start, end, ok))
			if len(src.Achievements) > 0 {
				res += ": " + strings.Join(src.Achievements, "; ")
			}
			return res
		}), docxEntrySep),
		"education": strings.Join(slice.Map(p.Education, func(idx int, src profile.Education) string {
			end, ok := src.EndDate()
			res := fmt.Sprintf("%s, %s (%s)", src.Degree, src.School, printDates(src.Start, end, ok))
			if src.GPA != "" {
				res += ", GPA " + src.GPA
			}
			return res
		}), docxEntrySep),
		"skills": strings.Join(slice.Map(groupSkills(p.Skills), func(idx int, src skillGroup) string {
			return src.category + ": " + strings.Join(src.names, ", ")
		}), docxEntrySep),
		"projects": strings.Join(slice.Map(p.Projects, func(idx int, src profile.Project) string {
			res := src.Title
			if link := src.Link(); link != "" {
				res += " (" + link + ")"
			}
			if src.Description != "" {
				res += ": " + src.Description
			}
			if len(src.Highlights) > 0 {
				res += " (" + strings.Join(src.Highlights, "; ") + ")"
			}
			return res
		}), docxEntrySep),
	}
}

func AssembleDOCX(values docx.PlaceholderMap) ([]byte, error) {
	doc, err := docx.OpenBytes(docxTemplate)
	if err != nil {
		return nil, fmt.Errorf("打开 docx 模板失败: %w", err)
	}
	defer doc.Close()
	if err = doc.ReplaceAll(values); err != nil {
		return nil, fmt.Errorf("替换 docx 占位符失败: %w", err)
	}
	var buf bytes.Buffer
	if err = doc.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
