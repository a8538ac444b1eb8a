package iocli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeStdio создает Stdio, читающий из pipe с заданным содержимым
func pipeStdio(t *testing.T, input string) (*Stdio, *bytes.Buffer) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	// Пишем в pipe в отдельной горутине, имитируя ввод пользователя
	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	var out bytes.Buffer
	return NewStdioFrom(r, &out), &out
}

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	stdio, out := pipeStdio(t, "")

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestReadInput(t *testing.T) {
	stdio, out := pipeStdio(t, "  user input  \n")

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())
}

// Буфер чтения общий, поэтому последовательные строки не теряются
func TestReadInput_MultipleLines(t *testing.T) {
	stdio, _ := pipeStdio(t, "first\nsecond\nlast")

	for _, expected := range []string{"first", "second", "last"} {
		got, err := stdio.ReadInput("> ")
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	_, err := stdio.ReadInput("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadPassword_NotTerminal(t *testing.T) {
	stdio, out := pipeStdio(t, "S3cret!pw\n")

	result, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "S3cret!pw", result)
	assert.Equal(t, "Password: ", out.String())
}

func TestReadPassword_NotTerminal_KeepsSpaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "leading and trailing spaces", input: "  pass word  \n", expected: "  pass word  "},
		{name: "crlf terminator", input: "\tS3cret!\r\n", expected: "\tS3cret!"},
		{name: "last line without newline", input: " tail ", expected: " tail "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdio, _ := pipeStdio(t, tt.input)

			result, err := stdio.ReadPassword("Password: ")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReadPassword_NotTerminal_EOF(t *testing.T) {
	stdio, _ := pipeStdio(t, "")

	_, err := stdio.ReadPassword("Password: ")
	assert.ErrorIs(t, err, io.EOF)
}
