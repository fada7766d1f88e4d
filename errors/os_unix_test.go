//go:build linux || darwin

package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestDecodeErrorKind(t *testing.T) {
	tests := []struct {
		errno unix.Errno
		want  Kind
	}{
		{unix.ENOENT, KindNotFound},
		{unix.EACCES, KindPermissionDenied},
		{unix.EPERM, KindPermissionDenied},
		{unix.EEXIST, KindAlreadyExists},
		{unix.EINTR, KindInterrupted},
		{unix.EAGAIN, KindWouldBlock},
		{unix.EWOULDBLOCK, KindWouldBlock},
		{unix.ENOTDIR, KindNotADirectory},
		{unix.EISDIR, KindIsADirectory},
		{unix.ENOTEMPTY, KindDirectoryNotEmpty},
		{unix.EROFS, KindReadOnlyFilesystem},
		{unix.ELOOP, KindFilesystemLoop},
		{unix.ENAMETOOLONG, KindInvalidFilename},
		{unix.EXDEV, KindCrossesDevices},
		{unix.EPIPE, KindBrokenPipe},
		{unix.ECONNREFUSED, KindConnectionRefused},
		{unix.ETIMEDOUT, KindTimedOut},
		{unix.ENOMEM, KindOutOfMemory},
		{unix.ENOSPC, KindStorageFull},
		{unix.EINVAL, KindInvalidInput},
		{0, KindUncategorized},
	}

	for _, tt := range tests {
		t.Run(unix.ErrnoName(tt.errno), func(t *testing.T) {
			require.Equal(t, tt.want, decodeErrorKind(int32(tt.errno)))
		})
	}
}

func TestErrnoName(t *testing.T) {
	require.Equal(t, "ENOENT", errnoName(int32(unix.ENOENT)))
	require.Equal(t, "", errnoName(99999))
}

func TestToJSON_PathError(t *testing.T) {
	resp := ToJSON(NewPathError("/tmp/missing", int32(unix.ENOENT)))

	require.Equal(t, "NOT_FOUND", resp.Kind)
	require.Equal(t, "no such file or directory", resp.Message)
	require.NotNil(t, resp.OSCode)
	require.Equal(t, int32(2), *resp.OSCode)
	require.Equal(t, "ENOENT", resp.Errno)
	require.Equal(t, "/tmp/missing", resp.Path)
}
