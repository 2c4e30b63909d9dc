package receipt

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromiumBuilder typesets the receipt as HTML and prints it to PDF
// via headless Chromium. One builder per render; it is not reusable.
type ChromiumBuilder struct {
	execPath string
	timeout  time.Duration

	header  Header
	columns []string
	rows    [][]string
	footer  string
}

func NewChromiumBuilder(execPath string, timeout time.Duration) *ChromiumBuilder {
	return &ChromiumBuilder{execPath: execPath, timeout: timeout}
}

func (b *ChromiumBuilder) AddHeader(h Header) {
	b.header = h
}

func (b *ChromiumBuilder) AddTable(columns []string, rows [][]string) {
	b.columns = columns
	b.rows = rows
}

func (b *ChromiumBuilder) AddFooter(text string) {
	b.footer = text
}

func (b *ChromiumBuilder) Output(ctx context.Context) ([]byte, error) {
	html, err := b.renderHTML()
	if err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if b.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(b.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	timeout := b.timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	runCtx, cancelRun := chromedp.NewContext(allocCtx)
	defer cancelRun()
	runCtx, cancelTimeout := context.WithTimeout(runCtx, timeout)
	defer cancelTimeout()

	var pdfBuf []byte
	dataURL := "data:text/html," + url.PathEscape(html)
	err = chromedp.Run(runCtx,
		chromedp.Navigate(dataURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, perr := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if perr == nil {
				pdfBuf = buf
			}
			return perr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp run failed: %w", err)
	}
	return pdfBuf, nil
}

func (b *ChromiumBuilder) renderHTML() (string, error) {
	var buf bytes.Buffer
	err := receiptTemplate.Execute(&buf, struct {
		Header  Header
		Columns []string
		Rows    [][]string
		Footer  string
	}{b.header, b.columns, b.rows, b.footer})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; margin: 40px; color: #222; }
  h1 { font-size: 18px; margin-bottom: 2px; }
  .meta { margin-bottom: 24px; color: #444; }
  .meta div { margin: 2px 0; }
  table { width: 100%; border-collapse: collapse; }
  th { text-align: left; border-bottom: 2px solid #222; padding: 6px 8px; }
  td { padding: 6px 8px; border-bottom: 1px solid #ddd; }
  td:nth-child(n+3) { text-align: right; }
  .footer { margin-top: 32px; font-size: 10px; color: #888; }
</style>
</head>
<body>
<h1>Expense Receipt</h1>
<div class="meta">
  <div>Team: {{.Header.TeamName}} (#{{.Header.TeamNumber}})</div>
  <div>Coach: {{.Header.CoachName}}</div>
  <div>Email: {{.Header.Email}}</div>
  <div>Generated: {{.Header.GeneratedAt}}</div>
</div>
<table>
  <thead>
    <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
  </thead>
  <tbody>
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
    {{end}}
  </tbody>
</table>
<div class="footer">{{.Footer}}</div>
</body>
</html>`))
