package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// rasterizeOCR renders every page to PNG and OCRs each image. This is the
// expensive fallback for scanned documents; it only runs when the digital
// text pass produced nothing usable.
func (e *Extractor) rasterizeOCR(ctx context.Context, path string) ([]PageText, []string, error) {
	tmpDir, err := os.MkdirTemp("", "dx-pp-*")
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if rerr := os.RemoveAll(tmpDir); rerr != nil {
			e.logger.Warn("ocr.tmp_cleanup_failed", "dir", tmpDir, "error", rerr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}

	pages := make([]PageText, 0, len(matches))
	var warns []string
	for i, img := range matches {
		txt, w, err := e.tesseractOCR(ctx, img)
		warns = append(warns, w...)
		if err != nil {
			warns = append(warns, err.Error())
			pages = append(pages, PageText{Number: i + 1})
			continue
		}
		pages = append(pages, PageText{Number: i + 1, Text: strings.TrimSpace(txt)})
	}
	return pages, warns, nil
}

func (e *Extractor) tesseractOCR(ctx context.Context, imgPath string) (string, []string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, imgPath, "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}
