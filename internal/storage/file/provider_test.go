package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoProvider_AppendAndRead(t *testing.T) {
	p := NewProvider(afero.NewMemMapFs())

	ok, err := p.Exists("data/lines.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.MkdirsIfAbsent("data"))
	require.NoError(t, p.AppendLine("data/lines.txt", "first"))
	require.NoError(t, p.AppendLine("data/lines.txt", "second"))

	ok, err = p.Exists("data/lines.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	lines, err := p.ReadAllLines("data/lines.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, lines)
}

func TestAferoProvider_ReadAllLines_CRLFAndEmpty(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "crlf.txt", []byte("a:1\r\nb:2\r\n"), 0600))
	require.NoError(t, afero.WriteFile(fsys, "empty.txt", nil, 0600))

	p := NewProvider(fsys)

	lines, err := p.ReadAllLines("crlf.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a:1", "b:2"}, lines)

	lines, err = p.ReadAllLines("empty.txt")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAferoProvider_ReadAllLines_Missing(t *testing.T) {
	p := NewProvider(afero.NewMemMapFs())

	_, err := p.ReadAllLines("missing.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOSProvider_RootedAtDataDir(t *testing.T) {
	root := t.TempDir()
	p := NewOSProvider(root)

	require.NoError(t, p.MkdirsIfAbsent("userdata"))
	require.NoError(t, p.AppendLine("userdata/x.txt", "hello"))

	// Файл должен оказаться внутри корня провайдера
	data, err := os.ReadFile(filepath.Join(root, "userdata", "x.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))

	info, err := os.Stat(filepath.Join(root, "userdata", "x.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
