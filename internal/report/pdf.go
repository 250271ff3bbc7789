// Package report extracts text from medical report files so the findings can
// be passed to the AI gateway for interpretation.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxReportBytes bounds how much of a report is forwarded to the model.
const maxReportBytes = 64 << 10 // 64KB

// ExtractText reads the findings from path. PDF files are parsed for their
// plain text; anything else is read as-is. Output is trimmed and capped at
// maxReportBytes.
func ExtractText(path string) (string, error) {
	var text string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		extracted, err := extractPDF(path)
		if err != nil {
			return "", err
		}
		text = extracted
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading report file: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("report %s contains no extractable text", path)
	}
	if len(text) > maxReportBytes {
		text = text[:maxReportBytes]
	}
	return text, nil
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	return buf.String(), nil
}
