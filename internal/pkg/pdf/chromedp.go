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
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromePrinter 通过远程的 headless Chrome 生成 PDF
type ChromePrinter struct {
	// 远程 Chrome 的 WebSocket 地址
	remoteURL string
	timeout   time.Duration
	options   Options
}

func NewChromePrinter(remoteURL string, timeout time.Duration, opts ...Option) *ChromePrinter {
	options := Options{}
	for _, opt := range append([]Option{PaperLetter, MarginsNormal}, opts...) {
		opt(&options)
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromePrinter{
		remoteURL: remoteURL,
		timeout:   timeout,
		options:   options,
	}
}

func (c *ChromePrinter) Print(ctx context.Context, html string) ([]byte, error) {
	if c.remoteURL == "" {
		return nil, fmt.Errorf("%w: 没有配置 pdf.remoteURL", ErrUnavailable)
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewRemoteAllocator(timeoutCtx, c.remoteURL)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	params := page.PrintToPDF().
		WithPrintBackground(true).
		WithPreferCSSPageSize(true).
		WithPaperWidth(c.options.PaperWidthInch).
		WithPaperHeight(c.options.PaperHeightInch).
		WithMarginTop(c.options.MarginTopInch).
		WithMarginBottom(c.options.MarginBottomInch).
		WithMarginLeft(c.options.MarginLeftInch).
		WithMarginRight(c.options.MarginRightInch).
		WithLandscape(c.options.Landscape)

	var data []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			data, _, err = params.Do(ctx)
			return err
		}),
	)
	if err != nil {
		// 不重试，直接告诉调用者
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return data, nil
}
