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

package domain

import (
	"errors"
	"regexp"
)

var (
	ErrNoResumeData       = errors.New("No resume data found. Please add your information in the admin panel first.")
	ErrPrinterUnavailable = errors.New("PDF rendering is unavailable. Start the headless Chrome configured in pdf.remoteURL, or set a PDF download URL in the admin panel.")
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatDOCX     Format = "docx"
	FormatPDF      Format = "pdf"
	FormatHTML     Format = "html"
)

func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/html; charset=utf-8"
	}
}

// Document 是导出的结果，RedirectURL 不为空的时候 Data 为空
type Document struct {
	Format      Format
	Filename    string
	Data        []byte
	RedirectURL string
}

var whitespace = regexp.MustCompile(`\s+`)

// Filename 名字里面连续的空白替换成一个下划线
func Filename(fullName string, f Format) string {
	return whitespace.ReplaceAllString(fullName, "_") + "_resume." + string(f)
}
