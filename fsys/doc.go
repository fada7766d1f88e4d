// Package fsys runs filesystem system calls on paths and returns errors that
// carry both the OS code and the offending path.
//
// On Linux each call packs the path into a pathbuf buffer with
// errors.RunWithPath and hands the buffer's NUL-terminated bytes straight to
// the kernel through the *at system calls, relative to the current working
// directory. When the call fails, the errno is stored in the same buffer and
// the buffer becomes the returned *errors.Error, so a failed call allocates
// the path once.
//
// Interrupted calls (EINTR) are retried, except close(2).
//
// Other Unix platforms implement the same API over package os and attach the path
// with errors.WithPath.
package fsys
