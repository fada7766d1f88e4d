//go:build linux || darwin

package fsys_test

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/oserr/alloc"
	"github.com/jmgilman/go/oserr/errors"
	"github.com/jmgilman/go/oserr/fsys"
)

func requirePathError(t *testing.T, err error, kind errors.Kind, path string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, errors.KindOf(err), "error: %v", err)
	p, ok := errors.PathOf(err)
	require.True(t, ok, "error carries no path: %v", err)
	require.Equal(t, path, p)
}

func TestOpenClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")

	fd, err := fsys.Open(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	require.NoError(t, err)
	require.GreaterOrEqual(t, fd, 0)
	require.NoError(t, fsys.Close(fd))

	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = fsys.Open(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	requirePathError(t, err, errors.KindAlreadyExists, path)
}

func TestOpen_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	fd, err := fsys.Open(path, os.O_RDONLY, 0)
	require.Equal(t, -1, fd)
	requirePathError(t, err, errors.KindNotFound, path)
	require.ErrorIs(t, err, os.ErrNotExist)

	code, ok := errors.RawOSError(err)
	require.True(t, ok)
	require.Equal(t, int32(syscall.ENOENT), code)
}

func TestOpen_InteriorNul(t *testing.T) {
	_, err := fsys.Open("/tmp/a\x00b", os.O_RDONLY, 0)
	require.Equal(t, errors.KindInvalidInput, errors.KindOf(err))
	_, ok := errors.PathOf(err)
	require.False(t, ok)
}

func TestClose_BadDescriptor(t *testing.T) {
	err := fsys.Close(-1)
	require.Equal(t, errors.KindUncategorized, errors.KindOf(err))
	code, ok := errors.RawOSError(err)
	require.True(t, ok)
	require.Equal(t, int32(syscall.EBADF), code)
}

func TestMkdirRmdir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")

	require.NoError(t, fsys.Mkdir(dir, 0o755))
	requirePathError(t, fsys.Mkdir(dir, 0o755), errors.KindAlreadyExists, dir)

	child := filepath.Join(dir, "child")
	require.NoError(t, os.WriteFile(child, []byte("x"), 0o644))
	requirePathError(t, fsys.Rmdir(dir), errors.KindDirectoryNotEmpty, dir)
	requirePathError(t, fsys.Rmdir(child), errors.KindNotADirectory, child)

	require.NoError(t, fsys.Unlink(child))
	require.NoError(t, fsys.Rmdir(dir))

	_, err := os.Stat(dir)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMkdir_MissingParent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	requirePathError(t, fsys.Mkdir(dir, 0o755), errors.KindNotFound, dir)
}

func TestUnlink(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	require.NoError(t, fsys.Unlink(file))
	requirePathError(t, fsys.Unlink(file), errors.KindNotFound, file)

	// unlinking a directory fails with EISDIR on Linux and EPERM on Darwin.
	err := fsys.Unlink(root)
	require.Error(t, err)
	p, ok := errors.PathOf(err)
	require.True(t, ok)
	require.Equal(t, root, p)
}

func TestAccess(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "script")
	require.NoError(t, os.WriteFile(file, []byte("#!/bin/sh\n"), 0o644))

	require.NoError(t, fsys.Access(file, fsys.AccessExists))
	require.NoError(t, fsys.Access(file, fsys.AccessRead))
	require.NoError(t, fsys.Access(root, fsys.AccessRead|fsys.AccessExec))

	missing := filepath.Join(root, "missing")
	requirePathError(t, fsys.Access(missing, fsys.AccessExists), errors.KindNotFound, missing)

	if os.Geteuid() != 0 {
		requirePathError(t, fsys.Access(file, fsys.AccessExec), errors.KindPermissionDenied, file)
	}
}

func TestReadlink(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target")
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(target, link))

	got, err := fsys.Readlink(link)
	require.NoError(t, err)
	require.Equal(t, target, got)

	_, err = fsys.Readlink(target)
	requirePathError(t, err, errors.KindNotFound, target)
}

func TestReadlink_LongTarget(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "t")
	for len(target) < 600 {
		target = filepath.Join(target, "segment")
	}
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(target, link))

	got, err := fsys.Readlink(link)
	require.NoError(t, err)
	require.Equal(t, target, got)
}

func TestSuccessfulCallsReleaseBuffers(t *testing.T) {
	c := alloc.NewCounting(nil)
	prev := alloc.SetDefault(c)
	t.Cleanup(func() { alloc.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "d")
	require.NoError(t, fsys.Mkdir(dir, 0o755))
	require.NoError(t, fsys.Access(dir, fsys.AccessExists))
	require.NoError(t, fsys.Rmdir(dir))

	require.Equal(t, 3, c.Allocs())
	require.NoError(t, c.CheckLeaks())
}

func TestParseAccessMode(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"f", fsys.AccessExists, true},
		{"r", fsys.AccessRead, true},
		{"rw", fsys.AccessRead | fsys.AccessWrite, true},
		{"rwx", fsys.AccessRead | fsys.AccessWrite | fsys.AccessExec, true},
		{"x", fsys.AccessExec, true},
		{"", 0, false},
		{"rf", 0, false},
		{"q", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := fsys.ParseAccessMode(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
