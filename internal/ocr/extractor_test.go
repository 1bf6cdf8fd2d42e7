package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// scriptRunner dispatches on the binary name so each external tool can be
// stubbed independently.
type scriptRunner struct {
	pdftoppm  func(args []string) ([]byte, []byte, error)
	pdftotext func(args []string) ([]byte, []byte, error)
	tesseract func(args []string) ([]byte, []byte, error)
}

func (s scriptRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	switch name {
	case "pdftoppm":
		if s.pdftoppm != nil {
			return s.pdftoppm(args)
		}
	case "pdftotext":
		if s.pdftotext != nil {
			return s.pdftotext(args)
		}
	case "tesseract":
		if s.tesseract != nil {
			return s.tesseract(args)
		}
	}
	return nil, nil, fmt.Errorf("unexpected command %s", name)
}

func writeTempPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestExtractor(cfg Config) *Extractor {
	e := NewExtractor(cfg, nil)
	e.runner = scriptRunner{
		pdftotext: func([]string) ([]byte, []byte, error) { return nil, nil, nil },
	}
	e.pageCount = func(string) (int, error) { return 0, fmt.Errorf("count unavailable") }
	return e
}

func TestExtractDigitalTextWins(t *testing.T) {
	path := writeTempPDF(t)
	e := newTestExtractor(Config{})
	e.native = func(string, int) ([]PageText, error) {
		return []PageText{
			{Number: 1, Text: "page one"},
			{Number: 2, Text: "page two"},
		}, nil
	}
	e.pageCount = func(string) (int, error) { return 2, nil }

	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Method != "pdf-text" {
		t.Errorf("expected pdf-text, got %s", res.Method)
	}
	if len(res.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(res.Pages))
	}
	if !strings.Contains(res.Combined(), "page one") {
		t.Error("combined text missing page content")
	}
}

func TestExtractOCRFallback(t *testing.T) {
	path := writeTempPDF(t)
	e := newTestExtractor(Config{})
	// digital layer present but empty: fallback must trigger
	e.native = func(string, int) ([]PageText, error) {
		return []PageText{{Number: 1}, {Number: 2}}, nil
	}
	e.runner = scriptRunner{
		pdftoppm: func(args []string) ([]byte, []byte, error) {
			// last arg is the output prefix
			prefix := args[len(args)-1]
			for i := 1; i <= 2; i++ {
				name := fmt.Sprintf("%s-%d.png", prefix, i)
				if err := os.WriteFile(name, []byte("png"), 0o644); err != nil {
					return nil, nil, err
				}
			}
			return nil, nil, nil
		},
		tesseract: func(args []string) ([]byte, []byte, error) {
			return []byte("scanned text " + filepath.Base(args[0])), nil, nil
		},
		pdftotext: func([]string) ([]byte, []byte, error) { return nil, nil, nil },
	}

	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Method != "pdf-ocr" {
		t.Errorf("expected pdf-ocr, got %s", res.Method)
	}
	if len(res.Pages) != 2 {
		t.Fatalf("expected 2 OCR pages, got %d", len(res.Pages))
	}
	if !strings.Contains(res.Pages[0].Text, "scanned text") {
		t.Errorf("unexpected OCR text %q", res.Pages[0].Text)
	}
}

func TestExtractOCRPageFailureDegrades(t *testing.T) {
	path := writeTempPDF(t)
	e := newTestExtractor(Config{})
	e.native = func(string, int) ([]PageText, error) { return nil, nil }
	calls := 0
	e.runner = scriptRunner{
		pdftoppm: func(args []string) ([]byte, []byte, error) {
			prefix := args[len(args)-1]
			for i := 1; i <= 2; i++ {
				if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
					return nil, nil, err
				}
			}
			return nil, nil, nil
		},
		tesseract: func(args []string) ([]byte, []byte, error) {
			calls++
			if calls == 1 {
				return nil, []byte("bad image"), fmt.Errorf("exit 1")
			}
			return []byte("recovered"), nil, nil
		},
		pdftotext: func([]string) ([]byte, []byte, error) { return nil, nil, nil },
	}

	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Pages) != 2 {
		t.Fatalf("expected 2 pages despite one failure, got %d", len(res.Pages))
	}
	if res.Pages[0].Text != "" {
		t.Errorf("failed page should be empty, got %q", res.Pages[0].Text)
	}
	if res.Pages[1].Text != "recovered" {
		t.Errorf("second page lost: %q", res.Pages[1].Text)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected warnings for failed OCR page")
	}
}

func TestExtractMissingFileFatal(t *testing.T) {
	e := newTestExtractor(Config{})
	e.native = func(string, int) ([]PageText, error) { return nil, nil }
	if _, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractAppendsTableBlocks(t *testing.T) {
	path := writeTempPDF(t)
	layout := strings.Join([]string{
		"Financial Highlights",
		"Revenue      1,200    1,350",
		"EBITDA         350      410",
		"",
	}, "\n")

	e := newTestExtractor(Config{})
	e.native = func(string, int) ([]PageText, error) {
		return []PageText{{Number: 1, Text: "narrative"}}, nil
	}
	e.runner = scriptRunner{
		pdftotext: func([]string) ([]byte, []byte, error) { return []byte(layout), nil, nil },
	}
	e.pageCount = func(string) (int, error) { return 1, nil }

	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Tables != 1 {
		t.Fatalf("expected 1 table block, got %d", res.Tables)
	}
	// page count must not change: table text joins the last page
	if len(res.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(res.Pages))
	}
	if !strings.Contains(res.Pages[0].Text, "Revenue | 1,200 | 1,350") {
		t.Errorf("table rows not appended: %q", res.Pages[0].Text)
	}
}

func TestPreview(t *testing.T) {
	path := writeTempPDF(t)
	e := newTestExtractor(Config{})
	var gotMax int
	e.native = func(_ string, maxPages int) ([]PageText, error) {
		gotMax = maxPages
		return []PageText{{Number: 1, Text: "first"}, {Number: 2, Text: "second"}}, nil
	}

	out, err := e.Preview(context.Background(), path, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMax != 2 {
		t.Errorf("expected default preview of 2 pages, got %d", gotMax)
	}
	if out != "first\nsecond" {
		t.Errorf("unexpected preview %q", out)
	}
}

func TestPreviewErrorsSurface(t *testing.T) {
	path := writeTempPDF(t)
	e := newTestExtractor(Config{})
	e.native = func(string, int) ([]PageText, error) {
		return nil, fmt.Errorf("broken xref")
	}
	if _, err := e.Preview(context.Background(), path, 2); err == nil {
		t.Fatal("expected preview failure to surface")
	}
}
