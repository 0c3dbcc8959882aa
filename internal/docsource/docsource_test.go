package docsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_TextFile(t *testing.T) {
	content := "STOICHIOMETRY\n2 H2 + O2 → 2 H2O\n"
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := Read(path, nil)
	require.NoError(t, err)
	assert.Equal(t, content, got, "text is returned verbatim")
}

func TestRead_Stdin(t *testing.T) {
	got, err := Read(Stdin, strings.NewReader("\ufeffMachine learning is a field."))
	require.NoError(t, err)
	assert.Equal(t, "Machine learning is a field.", got)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExtract_Unsupported(t *testing.T) {
	_, err := Extract("fake.pdf", []byte("just text"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Extract("blob.bin", []byte{0xff, 0xfe, 0x00, 0x01})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestExtract_CorruptPDF(t *testing.T) {
	_, err := Extract("broken.pdf", []byte("%PDF-1.4\nnot really a pdf"))
	assert.Error(t, err)
}
