//go:build linux || darwin

package errors

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// decodeErrorKind maps an errno value to a Kind.
func decodeErrorKind(code int32) Kind {
	switch unix.Errno(code) {
	case unix.E2BIG:
		return KindArgumentListTooLong
	case unix.EADDRINUSE:
		return KindAddrInUse
	case unix.EADDRNOTAVAIL:
		return KindAddrNotAvailable
	case unix.EBUSY:
		return KindResourceBusy
	case unix.ECONNABORTED:
		return KindConnectionAborted
	case unix.ECONNREFUSED:
		return KindConnectionRefused
	case unix.ECONNRESET:
		return KindConnectionReset
	case unix.EDEADLK:
		return KindDeadlock
	case unix.EDQUOT:
		return KindFilesystemQuotaExceeded
	case unix.EEXIST:
		return KindAlreadyExists
	case unix.EFBIG:
		return KindFileTooLarge
	case unix.EHOSTUNREACH:
		return KindHostUnreachable
	case unix.EINTR:
		return KindInterrupted
	case unix.EINVAL:
		return KindInvalidInput
	case unix.EISDIR:
		return KindIsADirectory
	case unix.ELOOP:
		return KindFilesystemLoop
	case unix.ENOENT:
		return KindNotFound
	case unix.ENOMEM:
		return KindOutOfMemory
	case unix.ENOSPC:
		return KindStorageFull
	case unix.ENOSYS:
		return KindUnsupported
	case unix.EMLINK:
		return KindTooManyLinks
	case unix.ENAMETOOLONG:
		return KindInvalidFilename
	case unix.ENETDOWN:
		return KindNetworkDown
	case unix.ENETUNREACH:
		return KindNetworkUnreachable
	case unix.ENOTCONN:
		return KindNotConnected
	case unix.ENOTDIR:
		return KindNotADirectory
	case unix.ENOTEMPTY:
		return KindDirectoryNotEmpty
	case unix.EPIPE:
		return KindBrokenPipe
	case unix.EROFS:
		return KindReadOnlyFilesystem
	case unix.ESPIPE:
		return KindNotSeekable
	case unix.ESTALE:
		return KindStaleNetworkFileHandle
	case unix.ETIMEDOUT:
		return KindTimedOut
	case unix.ETXTBSY:
		return KindExecutableFileBusy
	case unix.EXDEV:
		return KindCrossesDevices
	case unix.EACCES, unix.EPERM:
		return KindPermissionDenied
	case unix.EAGAIN:
		return KindWouldBlock
	default:
		return KindUncategorized
	}
}

// errnoName returns the symbolic name of an errno value, such as "ENOENT",
// or "" if it is unknown.
func errnoName(code int32) string {
	return unix.ErrnoName(syscall.Errno(code))
}
