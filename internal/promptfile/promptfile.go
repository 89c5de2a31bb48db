// Package promptfile pre-fills the prompt from a text or PDF document.
package promptfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxRunes caps how much of a document is copied into the prompt.
const MaxRunes = 4000

var extraneousWhitespace = regexp.MustCompile(`\s+`)

// Load returns the prompt text stored at path. PDFs are flattened to plain
// text. An empty path yields an empty prompt.
func Load(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}

	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = readPDF(path)
	case "", ".txt", ".md", ".markdown", ".text":
		text, err = readText(path)
	default:
		return "", fmt.Errorf("unsupported prompt file %q (want .txt, .md or .pdf)", filepath.Base(path))
	}
	if err != nil {
		return "", err
	}
	return clip(strings.TrimSpace(text), MaxRunes), nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt file: %w", err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

func readPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer file.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var builder strings.Builder
	if _, err := io.Copy(&builder, content); err != nil {
		return "", err
	}
	return extraneousWhitespace.ReplaceAllString(builder.String(), " "), nil
}

func clip(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimSpace(string(runes[:limit]))
}
