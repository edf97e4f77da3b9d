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

import (
	"context"
	"errors"
)

// ErrUnavailable 渲染服务连接不上或者渲染失败
var ErrUnavailable = errors.New("pdf: 渲染服务不可用")

// Printer 把完整的 HTML 文档渲染成 PDF，分页由渲染引擎决定
//
//go:generate mockgen -source=./pdf.go -package=pdfmocks -destination=./mocks/pdf.mock.go Printer
type Printer interface {
	Print(ctx context.Context, html string) ([]byte, error)
}

type Options struct {
	PaperWidthInch   float64
	PaperHeightInch  float64
	MarginTopInch    float64
	MarginBottomInch float64
	MarginLeftInch   float64
	MarginRightInch  float64
	Landscape        bool
}

type Option func(*Options)
