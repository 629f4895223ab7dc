package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestDocx builds a minimal valid DOCX file in memory with one
// <w:p> per paragraph.
func createTestDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	contentTypes, err := w.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = contentTypes.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`))
	require.NoError(t, err)

	rels, err := w.Create("word/_rels/document.xml.rels")
	require.NoError(t, err)
	_, err = rels.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`))
	require.NoError(t, err)

	body := new(bytes.Buffer)
	for _, p := range paragraphs {
		fmt.Fprintf(body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}

	doc, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = fmt.Fprintf(doc, `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>%s</w:body>
</w:document>`, body.String())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	parser := NewDocumentParserService()

	for _, format := range []string{"txt", "doc", "rtf", ""} {
		_, err := parser.ExtractText([]byte("irrelevant"), format)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	}
}

func TestExtractText_FormatTagCaseInsensitive(t *testing.T) {
	parser := NewDocumentParserService()
	data := createTestDocx(t, "Jane Doe")

	text, err := parser.ExtractText(data, "DOCX")
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
}

func TestExtractText_CorruptPDF(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractText([]byte("definitely not a pdf"), "pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentRead)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractText([]byte("definitely not a zip"), "docx")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDocumentRead)
}

func TestExtractText_DocxParagraphs(t *testing.T) {
	parser := NewDocumentParserService()
	data := createTestDocx(t, "Jane Doe", "jane.doe@example.com", "Python developer")

	text, err := parser.ExtractText(data, "docx")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane.doe@example.com\nPython developer\n", text)
}

func TestExtractText_Idempotent(t *testing.T) {
	parser := NewDocumentParserService()
	data := createTestDocx(t, "Jane Doe", "Python developer")

	first, err := parser.ExtractText(data, "docx")
	require.NoError(t, err)

	second, err := parser.ExtractText(data, "docx")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractFile(t *testing.T) {
	parser := NewDocumentParserService()

	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, createTestDocx(t, "Jane Doe"), 0644))

	text, err := parser.ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n", text)
}

func TestExtractFile_UnsupportedExtension(t *testing.T) {
	parser := NewDocumentParserService()

	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	_, err := parser.ExtractFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractFile_Missing(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, ErrDocumentRead)
}

func TestDocxPlainText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "runs concatenate within a paragraph",
			content: `<w:p><w:r><w:t>Hello </w:t></w:r><w:r><w:t>World</w:t></w:r></w:p>`,
			want:    "Hello World\n",
		},
		{
			name:    "empty paragraph contributes a blank line",
			content: `<w:p><w:r><w:t>A</w:t></w:r></w:p><w:p/><w:p><w:r><w:t>B</w:t></w:r></w:p>`,
			want:    "A\n\nB\n",
		},
		{
			name:    "paragraph properties are not text",
			content: `<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t>Centered</w:t></w:r></w:p>`,
			want:    "Centered\n",
		},
		{
			name:    "xml entities are unescaped",
			content: `<w:p><w:r><w:t>C&amp;C &lt;dev&gt;</w:t></w:r></w:p>`,
			want:    "C&C <dev>\n",
		},
		{
			name:    "preserved-space attribute",
			content: `<w:p><w:r><w:t xml:space="preserve"> padded </w:t></w:r></w:p>`,
			want:    " padded \n",
		},
		{
			name:    "no paragraphs",
			content: `<w:document></w:document>`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, docxPlainText(tt.content))
		})
	}
}
