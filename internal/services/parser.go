package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	// ErrUnsupportedFormat signals a format tag outside {pdf, docx}.
	// A soft failure: callers branch on it rather than treating it as
	// a document defect.
	ErrUnsupportedFormat = fmt.Errorf("unsupported document format")

	// ErrDocumentRead signals a corrupt or unreadable payload. Not
	// retried; surfaced to the caller as a single consolidated failure.
	ErrDocumentRead = fmt.Errorf("failed to read document")
)

// DocumentParserService converts PDF and DOCX payloads into plain text.
// Extraction is total per page/paragraph: units that yield no text
// contribute an empty line instead of failing the whole document. An
// empty overall result is not an error; downstream analysis treats it
// as a degenerate input.
type DocumentParserService interface {
	ExtractText(data []byte, format string) (string, error)
	ExtractFile(path string) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

func (p *documentParserService) ExtractText(data []byte, format string) (string, error) {
	switch strings.ToLower(format) {
	case "pdf":
		return extractPDFText(data)
	case "docx":
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %q (must be pdf or docx)", ErrUnsupportedFormat, format)
	}
}

// ExtractFile reads the file at path and extracts text based on its
// extension. The extension is the caller-declared format tag.
func (p *documentParserService) ExtractFile(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext != "pdf" && ext != "docx" {
		return "", fmt.Errorf("%w: %q (must be pdf or docx)", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}

	return p.ExtractText(data, ext)
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			textBuilder.WriteString("\n")
			continue
		}

		// A page that cannot be decoded contributes an empty line,
		// not a failure for the whole document.
		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}
	defer doc.Close()

	return docxPlainText(doc.Editable().GetContent()), nil
}

var (
	docxParagraphRe = regexp.MustCompile(`(?s)<w:p(?:\s[^>]*)?/>|<w:p(?:\s[^>]*)?>.*?</w:p>`)
	docxRunRe       = regexp.MustCompile(`(?s)<w:t(?:\s[^>]*)?>(.*?)</w:t>`)

	xmlEntities = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
)

// docxPlainText recovers paragraph text from the raw document XML: each
// paragraph's text runs are concatenated and followed by a newline, so
// runs split by formatting stay on one line while paragraph boundaries
// become line breaks.
func docxPlainText(content string) string {
	var textBuilder strings.Builder

	for _, paragraph := range docxParagraphRe.FindAllString(content, -1) {
		for _, run := range docxRunRe.FindAllStringSubmatch(paragraph, -1) {
			textBuilder.WriteString(xmlEntities.Replace(run[1]))
		}
		textBuilder.WriteString("\n")
	}

	return textBuilder.String()
}
