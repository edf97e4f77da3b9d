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

package pdf

import "strings"

// WithPaperSize 纸张尺寸，单位英寸
func WithPaperSize(width, height float64) Option {
	return func(o *Options) {
		o.PaperWidthInch = width
		o.PaperHeightInch = height
	}
}

// WithMargins 页边距，单位英寸
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTopInch = top
		o.MarginRightInch = right
		o.MarginBottomInch = bottom
		o.MarginLeftInch = left
	}
}

func WithLandscape(landscape bool) Option {
	return func(o *Options) {
		o.Landscape = landscape
	}
}

var (
	PaperA4     = WithPaperSize(8.27, 11.69)
	PaperLetter = WithPaperSize(8.5, 11)

	MarginsNormal = WithMargins(0.4, 0.4, 0.4, 0.4)
	// 打印样式里面已经有 20px 的 padding
	MarginsNone = WithMargins(0, 0, 0, 0)
)

// Paper 按照配置里面的名字选择纸张，不认识的名字使用 Letter
func Paper(name string) Option {
	switch strings.ToLower(name) {
	case "a4":
		return PaperA4
	default:
		return PaperLetter
	}
}
