package ocr

import (
	"context"
	"regexp"
	"strings"
)

var reColumnGap = regexp.MustCompile(`\s{2,}`)

// tableBlocks renders layout-preserved text and mines it for runs of
// aligned multi-column lines. Whatever is found is supplementary data for
// the prompt text, so failures degrade to no contribution.
func (e *Extractor) tableBlocks(ctx context.Context, path string) ([]string, []string) {
	// pdftotext -layout keeps column alignment, which is what makes the
	// gap heuristic below workable.
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return nil, []string{"table pass: " + strings.TrimSpace(string(errb))}
	}
	return renderTables(string(out)), nil
}

// renderTables groups consecutive lines with two or more gap-separated
// cells into table blocks and renders each row pipe-joined. A lone
// multi-column line is ignored; real tables have at least two rows.
func renderTables(layout string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) >= 2 {
			blocks = append(blocks, strings.Join(current, "\n"))
		}
		current = nil
	}

	for _, line := range strings.Split(layout, "\n") {
		cells := splitColumns(line)
		if len(cells) >= 2 {
			current = append(current, strings.Join(cells, " | "))
		} else {
			flush()
		}
	}
	flush()
	return blocks
}

func splitColumns(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	parts := reColumnGap.Split(line, -1)
	cells := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}
