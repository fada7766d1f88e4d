//go:build unix && !linux

package fsys

import (
	"io/fs"
	"os"
	"syscall"

	"github.com/jmgilman/go/oserr/errors"
)

// nulCheck returns the error the Linux implementation reports for a path
// that cannot be packed.
func nulCheck(path string) error {
	_, err := errors.RunWithPath(path, func(*byte) (struct{}, syscall.Errno) {
		return struct{}{}, 0
	})
	return err
}

func pathErr(err error, path string) error {
	if err == nil {
		return nil
	}
	return errors.WithPath(err, path)
}

// Open opens path with os.OpenFile and returns its file descriptor. The
// descriptor is detached from the *os.File and must be closed with Close.
func Open(path string, flags int, perm uint32) (int, error) {
	if err := nulCheck(path); err != nil {
		return -1, err
	}
	f, err := os.OpenFile(path, flags, fs.FileMode(perm))
	if err != nil {
		return -1, pathErr(err, path)
	}
	fd, err := syscall.Dup(int(f.Fd()))
	_ = f.Close()
	if err != nil {
		return -1, pathErr(err, path)
	}
	return fd, nil
}

// Mkdir creates a directory.
func Mkdir(path string, perm uint32) error {
	if err := nulCheck(path); err != nil {
		return err
	}
	return pathErr(os.Mkdir(path, fs.FileMode(perm)), path)
}

// Unlink removes a non-directory.
func Unlink(path string) error {
	if err := nulCheck(path); err != nil {
		return err
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return pathErr(err, path)
	}
	if fi.IsDir() {
		return errors.NewPathError(path, int32(syscall.EISDIR))
	}
	return pathErr(os.Remove(path), path)
}

// Rmdir removes an empty directory.
func Rmdir(path string) error {
	if err := nulCheck(path); err != nil {
		return err
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return pathErr(err, path)
	}
	if !fi.IsDir() {
		return errors.NewPathError(path, int32(syscall.ENOTDIR))
	}
	return pathErr(os.Remove(path), path)
}

// Access checks path against mode. Without faccessat the check is
// approximated: existence with os.Stat, read and write by opening the file,
// and execute from the permission bits.
func Access(path string, mode uint32) error {
	if err := nulCheck(path); err != nil {
		return err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return pathErr(err, path)
	}

	if mode&AccessRead != 0 {
		f, err := os.Open(path)
		if err != nil {
			return pathErr(err, path)
		}
		_ = f.Close()
	}
	if mode&AccessWrite != 0 && !fi.IsDir() {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return pathErr(err, path)
		}
		_ = f.Close()
	}
	if mode&AccessExec != 0 && fi.Mode().Perm()&0o111 == 0 {
		return errors.NewPathError(path, int32(syscall.EACCES))
	}
	return nil
}

// Readlink returns the target of the symbolic link at path.
func Readlink(path string) (string, error) {
	if err := nulCheck(path); err != nil {
		return "", err
	}
	target, err := os.Readlink(path)
	return target, pathErr(err, path)
}

// Close closes fd.
func Close(fd int) error {
	err := syscall.Close(fd)
	if errno, ok := err.(syscall.Errno); ok {
		return errors.FromErrno(errno)
	}
	return err
}
