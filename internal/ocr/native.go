package ocr

import (
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// nativePages reads the digital text layer page by page. Pages without a
// text layer contribute an empty entry so page numbering stays aligned
// with the source document.
func nativePages(path string, maxPages int) ([]PageText, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	n := r.NumPage()
	if maxPages > 0 && n > maxPages {
		n = maxPages
	}
	pages := make([]PageText, 0, n)
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, PageText{Number: i})
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			// image-only or problematic page
			pages = append(pages, PageText{Number: i})
			continue
		}
		pages = append(pages, PageText{Number: i, Text: strings.TrimSpace(txt)})
	}
	return pages, nil
}

// pdfcpuPageCount cross-checks how many pages the document declares.
func pdfcpuPageCount(path string) (int, error) {
	return api.PageCountFile(path)
}
