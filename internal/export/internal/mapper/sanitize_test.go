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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestSanitize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "悬浮按钮区域",
			input: `<div class="fixed top-4 right-4 z-50"><button>PDF</button></div><p>keep</p>`,
			want:  `<p>keep</p>`,
		},
		{
			name:  "只有部分类名",
			input: `<div class="fixed top-4">a</div><div class="top-4 right-4">b</div>`,
			want:  `<div class="fixed top-4">a</div><div class="top-4 right-4">b</div>`,
		},
		{
			name:  "嵌套的 no-print",
			input: `<section><h2>Skills</h2><span class="btn no-print">edit</span><p>Go</p></section>`,
			want:  `<section><h2>Skills</h2><p>Go</p></section>`,
		},
		{
			name:  "相邻的节点都删除",
			input: `<i class="no-print">1</i><i class="no-print">2</i><b>3</b>`,
			want:  `<b>3</b>`,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			doc, err := html.Parse(strings.NewReader("<html><body>" + tc.input + "</body></html>"))
			require.NoError(t, err)
			Sanitize(doc)
			var body *html.Node
			walk(doc, func(n *html.Node) bool {
				if n.Type == html.ElementNode && n.Data == "body" {
					body = n
					return false
				}
				return true
			})
			require.NotNil(t, body)
			var buf bytes.Buffer
			for c := body.FirstChild; c != nil; c = c.NextSibling {
				require.NoError(t, html.Render(&buf, c))
			}
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestAssemblePrint(t *testing.T) {
	p := testProfile()
	page, err := RenderPage(ToPrintPage(p, "dark"))
	require.NoError(t, err)
	// 页面本身带有操作按钮
	assert.Contains(t, page, `class="fixed top-4 right-4 no-print"`)

	doc, err := AssemblePrint(page, "Jane  Doe - Resume")
	require.NoError(t, err)
	_, css := ThemeCSS("dark")
	assert.Contains(t, doc, "<title>Jane  Doe - Resume</title>")
	assert.Contains(t, doc, strings.TrimSpace(css))
	assert.Contains(t, doc, "@media print { body { margin: 0; padding: 20px; } .no-print { display: none !important; } }")
	assert.Contains(t, doc, `<body class="theme-dark">`)
	assert.Contains(t, doc, "Senior Engineer")
	assert.Contains(t, doc, "Mar 2021 - Present")
	assert.Contains(t, doc, "Builds services &amp; tools.")
	assert.NotContains(t, doc, "fixed top-4 right-4")
	assert.NotContains(t, doc, "/export/docx")
	assert.NotContains(t, doc, "Back to portfolio")
}

func TestThemeCSS(t *testing.T) {
	testCases := []struct {
		theme string
		want  string
	}{
		{theme: "minimal", want: "minimal"},
		{theme: "dark", want: "dark"},
		{theme: "aurora", want: "aurora"},
		{theme: "glass", want: "glass"},
		{theme: "", want: "minimal"},
		{theme: "neon", want: "minimal"},
		{theme: "../../page", want: "minimal"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.theme, func(t *testing.T) {
			theme, css := ThemeCSS(tc.theme)
			assert.Equal(t, tc.want, theme)
			assert.NotEmpty(t, css)
		})
	}
}
