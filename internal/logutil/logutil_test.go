package logutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogger(t *testing.T) {
	defer SetOutput(io.Discard)
	logger := GetLogger("[test] ")
	var buf bytes.Buffer
	SetOutput(&buf)
	logger.Print("hello")
	assert.Contains(t, buf.String(), "[test] ")
	assert.Contains(t, buf.String(), "hello\n")

	later := GetLogger("[later] ")
	later.Print("world")
	assert.Contains(t, buf.String(), "[later] ")
}

func TestSetOutputFile(t *testing.T) {
	defer SetOutput(io.Discard)
	path := filepath.Join(t.TempDir(), "log")
	require.NoError(t, SetOutputFile(path))
	GetLogger("[file] ").Print("logged")
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[file] ")
	assert.Contains(t, string(b), "logged")

	require.NoError(t, SetOutputFile(""))
	assert.Error(t, SetOutputFile(filepath.Join(t.TempDir(), "missing", "log")))
}
