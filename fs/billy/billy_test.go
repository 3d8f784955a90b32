package billy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryFS_Exists verifies existence checks against the in-memory filesystem.
func TestMemoryFS_Exists(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("/sdk/bin/sn.exe", []byte("MZ"), 0o755))

	ok, err := fs.Exists("/sdk/bin/sn.exe")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fs.Exists("/sdk/bin")
	require.NoError(t, err)
	assert.True(t, ok, "directories exist too")

	ok, err = fs.Exists("/sdk/bin/missing.exe")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryFS_FileExists(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("/sdk/bin/sn.exe", []byte("MZ"), 0o755))
	require.NoError(t, fs.MkdirAll("/sdk/sn.exe", 0o755))

	ok, err := fs.FileExists("/sdk/bin/sn.exe")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fs.FileExists("/sdk/bin")
	require.NoError(t, err)
	assert.False(t, ok, "directories are not files")

	ok, err = fs.FileExists("/sdk/sn.exe")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fs.FileExists("/sdk/bin/missing.exe")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestMemoryFS_ReadWrite verifies basic read/write operations work.
func TestMemoryFS_ReadWrite(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("key.snk", []byte("first"), 0o644))
	require.NoError(t, fs.WriteFile("key.snk", []byte("second"), 0o644))

	data, err := fs.ReadFile("key.snk")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := fs.Stat("key.snk")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(len("second")), info.Size())

	require.NoError(t, fs.Remove("key.snk"))
	ok, err := fs.Exists("key.snk")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestMemoryFS_MkdirAll verifies nested directories are created.
func TestMemoryFS_MkdirAll(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("a/b/c", 0o755))

	info, err := fs.Stat("a/b/c")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.NotNil(t, fs.Unwrap())
}

// TestLocalFS_AbsolutePaths verifies LocalFS works with absolute host paths.
func TestLocalFS_AbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Core.dll")
	fs := NewLocal()

	ok, err := fs.Exists(target)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(target, []byte("MZ"), 0o644))

	ok, err = fs.Exists(target)
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := fs.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "MZ", string(data))
}

func TestLocalFS_FileExists(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "Core.dll")
	require.NoError(t, os.WriteFile(target, []byte("MZ"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bin"), 0o755))
	fs := NewLocal()

	ok, err := fs.FileExists(target)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = fs.FileExists(filepath.Join(dir, "bin"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = fs.Exists(filepath.Join(dir, "bin"))
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestLocalFS_WriteAndRemove verifies writes land on the host filesystem.
func TestLocalFS_WriteAndRemove(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "keys", "signing")
	fs := NewLocal()

	require.NoError(t, fs.MkdirAll(nested, 0o755))
	target := filepath.Join(nested, "key.snk")
	require.NoError(t, fs.WriteFile(target, []byte("key"), 0o600))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "key", string(data))

	info, err := fs.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())

	require.NoError(t, fs.Remove(target))
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))
	assert.NotNil(t, fs.Unwrap(dir))
}
