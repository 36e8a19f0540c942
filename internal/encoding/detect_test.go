package encoding

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestNewUTF8Reader_PlainUTF8PassesThrough(t *testing.T) {
	got := decode(t, []byte("Crème brûlée;12,50"))
	assert.Equal(t, "Crème brûlée;12,50", got)
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date;Montant")...)
	assert.Equal(t, "Date;Montant", decode(t, input))
}

func TestNewUTF8Reader_DecodesWindows1252(t *testing.T) {
	// "Café" with é as the single byte 0xE9.
	input := []byte{'C', 'a', 'f', 0xE9, ';', '3', ',', '5', '0'}
	assert.Equal(t, "Café;3,50", decode(t, input))
}

func TestNewUTF8Reader_DecodesUTF16LE(t *testing.T) {
	var buf bytes.Buffer

	buf.Write([]byte{0xFF, 0xFE})

	for _, r := range "Menu" {
		buf.WriteByte(byte(r))
		buf.WriteByte(0)
	}

	assert.Equal(t, "Menu", decode(t, buf.Bytes()))
}

func TestNewUTF8Reader_EmptyInput(t *testing.T) {
	assert.Empty(t, decode(t, nil))
}
