// Package chrome converts HTML to PDF with a headless Chrome driven over the
// DevTools protocol.
package chrome

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"irpfdecl/internal/port"
)

const mmPerInch = 25.4

// Paper sizes in inches.
var paperSizes = map[string][2]float64{
	"A4":     {8.27, 11.69},
	"Letter": {8.5, 11},
}

// Engine launches a fresh browser for every render and tears it down before
// returning.
type Engine struct {
	execPath string
	timeout  time.Duration
}

// NewEngine creates an Engine. An empty execPath lets chromedp find Chrome on
// the PATH; a zero timeout leaves the request context in charge.
func NewEngine(execPath string, timeout time.Duration) *Engine {
	return &Engine{execPath: execPath, timeout: timeout}
}

// Render implements port.PDFEngine.
func (e *Engine) Render(ctx context.Context, html string, opts port.PDFOptions) ([]byte, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, e.allocatorOptions()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	start := time.Now()
	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		setContent(html),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = printParams(opts).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome render: %w", err)
	}

	log.Printf("[chrome] rendered %d bytes in %s", len(pdf), time.Since(start))
	return pdf, nil
}

func (e *Engine) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.NoSandbox,
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}
	return opts
}

// setContent replaces the blank page's document with html.
func setContent(html string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
	})
}

// printParams maps PDFOptions onto the DevTools print parameters.
func printParams(opts port.PDFOptions) *page.PrintToPDFParams {
	size, ok := paperSizes[opts.PageSize]
	if !ok {
		size = paperSizes["A4"]
	}
	return page.PrintToPDF().
		WithPrintBackground(opts.PrintBackground).
		WithPaperWidth(size[0]).
		WithPaperHeight(size[1]).
		WithMarginTop(opts.MarginTopMM / mmPerInch).
		WithMarginRight(opts.MarginRightMM / mmPerInch).
		WithMarginBottom(opts.MarginBottomMM / mmPerInch).
		WithMarginLeft(opts.MarginLeftMM / mmPerInch)
}
