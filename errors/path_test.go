//go:build linux || darwin

package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/oserr/alloc"
)

func TestNewPathError(t *testing.T) {
	err := NewPathError("/tmp/missing", 2)

	require.Equal(t, tagPath, err.tag())
	code, ok := err.RawOSError()
	require.True(t, ok)
	require.Equal(t, int32(2), code)

	p, ok := err.Path()
	require.True(t, ok)
	require.Equal(t, "/tmp/missing", p)

	require.Equal(t, syscall.Errno(2).Error(), err.Message())
	require.Contains(t, err.Error(), `(os error 2) at path "/tmp/missing"`)
	require.Equal(t, syscall.Errno(2), err.Unwrap())
	require.True(t, stderrors.Is(err, fs.ErrNotExist))
}

func TestNewPathError_InteriorNul(t *testing.T) {
	err := NewPathError("/tmp/a\x00b", 2)

	require.Equal(t, KindInvalidInput, err.Kind())
	require.Equal(t, "path contains interior nul byte", err.Message())
	_, ok := err.RawOSError()
	require.False(t, ok)
	_, ok = err.Path()
	require.False(t, ok)
}

func TestNewPathError_EmptyPath(t *testing.T) {
	err := NewPathError("", 2)
	p, ok := err.Path()
	require.True(t, ok)
	require.Equal(t, "", p)
	require.Contains(t, err.Error(), `at path ""`)
}

func TestRunWithPath_Success(t *testing.T) {
	c := alloc.NewCounting(nil)
	prev := alloc.SetDefault(c)
	t.Cleanup(func() { alloc.SetDefault(prev) })

	var seen string
	n, err := RunWithPath("/etc/passwd", func(p *byte) (int, syscall.Errno) {
		seen = cString(p)
		return 42, 0
	})

	require.NoError(t, err)
	require.Equal(t, 42, n)
	require.Equal(t, "/etc/passwd", seen)
	require.NoError(t, c.CheckLeaks())
	require.Equal(t, 1, c.Allocs())
}

func TestRunWithPath_Failure(t *testing.T) {
	c := alloc.NewCounting(nil)
	prev := alloc.SetDefault(c)
	t.Cleanup(func() { alloc.SetDefault(prev) })

	_, err := RunWithPath("/tmp/missing", func(p *byte) (struct{}, syscall.Errno) {
		return struct{}{}, syscall.Errno(2)
	})

	require.Error(t, err)
	code, ok := RawOSError(err)
	require.True(t, ok)
	require.Equal(t, int32(2), code)
	p, ok := PathOf(err)
	require.True(t, ok)
	require.Equal(t, "/tmp/missing", p)

	// The error owns the one buffer that was passed to the callback.
	require.Equal(t, 1, c.Allocs())
	require.Equal(t, 1, c.Live())
	runtime.KeepAlive(err)
}

func TestRunWithPath_InvalidPath(t *testing.T) {
	called := false
	_, err := RunWithPath("bad\x00path", func(*byte) (int, syscall.Errno) {
		called = true
		return 0, 0
	})

	require.False(t, called)
	require.Equal(t, KindInvalidInput, KindOf(err))
}

// TestRunWithPath_MatchesNulCheck mirrors the byte-by-byte NUL check: every
// path either reaches the callback unchanged or fails with InvalidInput.
func TestRunWithPath_MatchesNulCheck(t *testing.T) {
	buf := make([]byte, 128)
	for i := range buf {
		buf[i] = byte('a' + i%26)
	}

	check := func(path string) {
		got, err := RunWithPath(path, func(p *byte) (string, syscall.Errno) {
			return cString(p), 0
		})
		for i := 0; i < len(path); i++ {
			if path[i] == 0 {
				require.Equal(t, KindInvalidInput, KindOf(err), "path %q", path)
				return
			}
		}
		require.NoError(t, err)
		require.Equal(t, path, got)
	}

	for i := 0; i <= len(buf); i++ {
		check(string(buf[:i]))
		tmp := append([]byte(nil), buf[:i]...)
		for j := range tmp {
			old := tmp[j]
			tmp[j] = 0
			check(string(tmp))
			tmp[j] = old
		}
	}
}

func TestWithPath(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantPath bool
		wantCode int32
	}{
		{"os error", FromRawOSError(13), true, 13},
		{"errno", syscall.Errno(20), true, 20},
		{"fs path error", &fs.PathError{Op: "open", Path: "x", Err: syscall.Errno(21)}, true, 21},
		{"kind only", FromKind(KindOther), false, 0},
		{"plain", stderrors.New("plain"), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WithPath(tt.err, "/srv/data")
			p, ok := PathOf(err)
			require.Equal(t, tt.wantPath, ok)
			if !tt.wantPath {
				require.Same(t, tt.err, err)
				return
			}
			require.Equal(t, "/srv/data", p)
			code, ok := RawOSError(err)
			require.True(t, ok)
			require.Equal(t, tt.wantCode, code)
		})
	}

	require.Nil(t, WithPath(nil, "/x"))
}

func TestWithPath_KeepsExistingPath(t *testing.T) {
	first := NewPathError("/first", 2)
	wrapped := fmt.Errorf("ctx: %w", first)

	require.Same(t, first, WithPath(first, "/second"))
	require.Equal(t, wrapped, WithPath(wrapped, "/second"))

	p, _ := PathOf(wrapped)
	require.Equal(t, "/first", p)
}

func TestPathError_ReleasedWhenUnreachable(t *testing.T) {
	c := alloc.NewCounting(nil)
	prev := alloc.SetDefault(c)
	t.Cleanup(func() { alloc.SetDefault(prev) })

	func() {
		for i := 0; i < 16; i++ {
			err := NewPathError(fmt.Sprintf("/tmp/file-%d", i), 2)
			_, _ = err.Path()
		}
	}()
	require.Equal(t, 16, c.Allocs())

	require.Eventually(t, func() bool {
		runtime.GC()
		return c.Live() == 0
	}, 5*time.Second, 10*time.Millisecond)
	require.Equal(t, 16, c.Frees())
}

func TestPathError_DefaultSwapAfterConstruction(t *testing.T) {
	c := alloc.NewCounting(nil)
	prev := alloc.SetDefault(c)

	err := NewPathError("/var/run/app.pid", 2)
	alloc.SetDefault(prev)

	// Reads go through the raw handle regardless of the current default.
	p, ok := err.Path()
	require.True(t, ok)
	require.Equal(t, "/var/run/app.pid", p)
	require.True(t, c.Owns(err.p))
	runtime.KeepAlive(err)
}

//go:noinline
func freshPath(path string) string {
	p, _ := NewPathError(path, 2).Path()
	return p
}

//go:noinline
func freshMessage(path string) string {
	return NewPathError(path, 2).Error()
}

func TestPathError_ReadsWhileCollecting(t *testing.T) {
	prev := alloc.SetDefault(alloc.Mmap{})
	t.Cleanup(func() { alloc.SetDefault(prev) })

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				runtime.GC()
			}
		}
	}()
	defer func() {
		close(stop)
		wg.Wait()
	}()

	path := strings.Repeat("a", 4000)
	for i := 0; i < 20000; i++ {
		require.Equal(t, path, freshPath(path))
		require.True(t, strings.HasSuffix(freshMessage(path), path+`"`))
	}
}

// cString reads a NUL-terminated string starting at p.
func cString(p *byte) string {
	var b []byte
	for q := p; *q != 0; q = (*byte)(unsafe.Add(unsafe.Pointer(q), 1)) {
		b = append(b, *q)
	}
	return string(b)
}
