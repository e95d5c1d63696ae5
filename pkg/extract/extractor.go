// Package extract converts raw document bytes into a plain UTF-8 text blob
// for classification and prompting. Supported formats: CSV (and anything
// unrecognized, passed through verbatim), XLSX/XLS, and PDF.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"github.com/dealscope/dealscope-engine/pkg/apperrors"
)

// Extract converts a file buffer of the given extension into text.
// The transform is pure: no side effects, no retries. A corrupt source file
// wraps apperrors.ErrExtraction and must surface to the user unretried.
func Extract(data []byte, ext string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "xlsx", "xls":
		return extractSpreadsheet(data)
	case "pdf":
		return extractPDF(data)
	default:
		// CSV and unknown formats are treated as text already.
		return string(data), nil
	}
}

// extractSpreadsheet serializes the first worksheet as CSV-shaped text: row 1
// becomes the header line, later rows are comma-joined with cells containing
// commas quoted. Sheets beyond the first are intentionally ignored.
func extractSpreadsheet(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: open spreadsheet: %v", apperrors.ErrExtraction, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: spreadsheet has no sheets", apperrors.ErrExtraction)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("%w: read sheet %q: %v", apperrors.ErrExtraction, sheets[0], err)
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			if strings.Contains(cell, ",") {
				sb.WriteByte('"')
				sb.WriteString(cell)
				sb.WriteByte('"')
			} else {
				sb.WriteString(cell)
			}
		}
	}
	return sb.String(), nil
}

// extractPDF walks every page in order, joining a page's text items with
// single spaces and pages with newlines.
func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %v", apperrors.ErrExtraction, err)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content := page.Content()
		words := make([]string, 0, len(content.Text))
		for _, t := range content.Text {
			words = append(words, t.S)
		}
		pages = append(pages, strings.Join(words, " "))
	}
	return strings.Join(pages, "\n"), nil
}
