//go:build linux

package fsys

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/oserr/errors"
)

// atFDCWD is AT_FDCWD (-100) as a uintptr for use with syscall.Syscall6.
const atFDCWD = ^uintptr(0) - 99

// Open opens path with openat(2) and returns the file descriptor. O_CLOEXEC
// is always added to flags.
func Open(path string, flags int, perm uint32) (int, error) {
	return errors.RunWithPath(path, func(p *byte) (int, syscall.Errno) {
		// Retry on EINTR without an upper bound, matching Go's standard library.
		for {
			fd, _, errno := syscall.Syscall6(
				syscall.SYS_OPENAT,
				atFDCWD,
				uintptr(unsafe.Pointer(p)),
				uintptr(flags|unix.O_CLOEXEC|unix.O_LARGEFILE),
				uintptr(perm),
				0, 0,
			)
			if errno == syscall.EINTR {
				continue
			}
			if errno != 0 {
				return -1, errno
			}
			return int(fd), 0
		}
	})
}

// Mkdir creates a directory with mkdirat(2).
func Mkdir(path string, perm uint32) error {
	_, err := errors.RunWithPath(path, func(p *byte) (struct{}, syscall.Errno) {
		for {
			_, _, errno := syscall.Syscall6(
				syscall.SYS_MKDIRAT,
				atFDCWD,
				uintptr(unsafe.Pointer(p)),
				uintptr(perm),
				0, 0, 0,
			)
			if errno != syscall.EINTR {
				return struct{}{}, errno
			}
		}
	})
	return err
}

// Unlink removes a non-directory with unlinkat(2).
func Unlink(path string) error {
	return unlinkat(path, 0)
}

// Rmdir removes an empty directory with unlinkat(2) and AT_REMOVEDIR.
func Rmdir(path string) error {
	return unlinkat(path, unix.AT_REMOVEDIR)
}

func unlinkat(path string, flags int) error {
	_, err := errors.RunWithPath(path, func(p *byte) (struct{}, syscall.Errno) {
		for {
			_, _, errno := syscall.Syscall6(
				syscall.SYS_UNLINKAT,
				atFDCWD,
				uintptr(unsafe.Pointer(p)),
				uintptr(flags),
				0, 0, 0,
			)
			if errno != syscall.EINTR {
				return struct{}{}, errno
			}
		}
	})
	return err
}

// Access checks path against mode with faccessat(2), using the real user and
// group IDs. mode is AccessExists or a combination of AccessRead,
// AccessWrite and AccessExec.
func Access(path string, mode uint32) error {
	_, err := errors.RunWithPath(path, func(p *byte) (struct{}, syscall.Errno) {
		for {
			_, _, errno := syscall.Syscall6(
				syscall.SYS_FACCESSAT,
				atFDCWD,
				uintptr(unsafe.Pointer(p)),
				uintptr(mode),
				0, 0, 0,
			)
			if errno != syscall.EINTR {
				return struct{}{}, errno
			}
		}
	})
	return err
}

// Readlink returns the target of the symbolic link at path.
func Readlink(path string) (string, error) {
	return errors.RunWithPath(path, func(p *byte) (string, syscall.Errno) {
		for size := 128; ; size *= 2 {
			buf := make([]byte, size)
			n, _, errno := syscall.Syscall6(
				syscall.SYS_READLINKAT,
				atFDCWD,
				uintptr(unsafe.Pointer(p)),
				uintptr(unsafe.Pointer(&buf[0])),
				uintptr(size),
				0, 0,
			)
			if errno == syscall.EINTR {
				size /= 2
				continue
			}
			if errno != 0 {
				return "", errno
			}
			if int(n) < size {
				return string(buf[:n]), 0
			}
		}
	})
}

// Close closes fd. close(2) is not retried on EINTR: the descriptor is
// released even when the call is interrupted.
func Close(fd int) error {
	_, _, errno := syscall.Syscall(syscall.SYS_CLOSE, uintptr(fd), 0, 0)
	return errors.FromErrno(errno)
}
