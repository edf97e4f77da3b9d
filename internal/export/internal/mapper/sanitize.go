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
	"html/template"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type printDocument struct {
	Title     string
	CSS       template.CSS
	BodyClass string
	Body      template.HTML
}

// AssemblePrint 把页面整理成打印用的文档：收集样式，去掉悬浮按钮和 no-print 的节点，再加上打印样式
func AssemblePrint(page string, title string) (string, error) {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", err
	}
	var (
		css  []string
		body *html.Node
	)
	walk(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		switch n.DataAtom {
		case atom.Style:
			if n.FirstChild != nil {
				css = append(css, n.FirstChild.Data)
			}
			return false
		case atom.Body:
			body = n
			return false
		}
		return true
	})
	res := printDocument{
		Title: title,
		CSS:   template.CSS(strings.Join(css, "\n")),
	}
	if body != nil {
		Sanitize(body)
		res.BodyClass = attr(body, "class")
		var buf bytes.Buffer
		for c := body.FirstChild; c != nil; c = c.NextSibling {
			if err = html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		res.Body = template.HTML(buf.String())
	}
	var out bytes.Buffer
	err = pageTemplate.ExecuteTemplate(&out, "print", res)
	return out.String(), err
}

// Sanitize 删除悬浮的操作按钮区域和所有 no-print 节点
func Sanitize(root *html.Node) {
	var next *html.Node
	for c := root.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && removable(c) {
			root.RemoveChild(c)
			continue
		}
		Sanitize(c)
	}
}

func removable(n *html.Node) bool {
	classes := strings.Fields(attr(n, "class"))
	return hasAll(classes, "no-print") || hasAll(classes, "fixed", "top-4", "right-4")
}

func hasAll(classes []string, want ...string) bool {
	for _, w := range want {
		found := false
		for _, c := range classes {
			if c == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// walk 前序遍历，fn 返回 false 的时候不再进入子节点
func walk(n *html.Node, fn func(n *html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
