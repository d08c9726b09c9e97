package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlainText(t *testing.T) {
	text, err := ExtractText([]byte("Jane Smith\njane@example.com\n\nExperience\n"), "resume.txt")

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\njane@example.com\n\nExperience", text)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	_, err := ExtractText([]byte("data"), "resume.odt")

	var unsupported *ErrUnsupportedFormat
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ".odt", unsupported.Extension)
}

func TestExtractTextEmptyDocument(t *testing.T) {
	_, err := ExtractText([]byte("   \n\n \t "), "blank.txt")

	var empty *ErrEmptyDocument
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "blank.txt", empty.Filename)
}

func TestExtractTextExtensionCaseInsensitive(t *testing.T) {
	text, err := ExtractText([]byte("content"), "RESUME.TXT")

	require.NoError(t, err)
	assert.Equal(t, "content", text)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	_, err := ExtractText([]byte("not a pdf"), "resume.pdf")
	assert.Error(t, err)
}

func TestExtractTextCorruptDocx(t *testing.T) {
	_, err := ExtractText([]byte("not a docx"), "resume.docx")
	assert.Error(t, err)
}

func TestCleanTextNormalizesWhitespace(t *testing.T) {
	input := "Jane  Smith\t\r\nEngineer   \r\n\r\n\r\n\r\nExperience"

	assert.Equal(t, "Jane Smith\nEngineer\n\nExperience", CleanText(input))
}

func TestCleanTextEmpty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("  \n\t\n  "))
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Smith\nEngineer"), 0o644))

	text, err := ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\nEngineer", text)
}

func TestExtractFileMissing(t *testing.T) {
	_, err := ExtractFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
