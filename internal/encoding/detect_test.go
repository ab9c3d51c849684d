package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budgie/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(out)
}

func TestNewUTF8Reader_PlainASCII(t *testing.T) {
	got := decode(t, []byte("Date,Description,Amount\n2024-01-01,Salary,50000.00\n"))

	assert.Equal(t, "Date,Description,Amount\n2024-01-01,Salary,50000.00\n", got)
}

func TestNewUTF8Reader_ValidUTF8PassesThrough(t *testing.T) {
	input := "2024-01-02,Café Müller,-12.50\n"

	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date,Amount\n")...)

	assert.Equal(t, "Date,Amount\n", decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	text := "Date,Amount\n"

	input := []byte{0xFF, 0xFE}
	for _, r := range text {
		input = append(input, byte(r), 0x00)
	}

	assert.Equal(t, text, decode(t, input))
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	// "Café" with a raw 0xE9, invalid as UTF-8, decoded as Windows-1252.
	input := []byte{'C', 'a', 'f', 0xE9, ',', '1', '0', '.', '0', '0', '\n'}

	got := decode(t, input)
	assert.True(t, strings.Contains(got, "Café"))
}

func TestNewUTF8Reader_EmptyInput(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}
