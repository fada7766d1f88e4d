package alloc

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/jmgilman/go/oserr/logging"
)

// abortExitCode matches the status of a process killed by SIGABRT.
const abortExitCode = 134

// AllocError describes an allocation request that an Allocator refused.
type AllocError struct {
	Layout Layout
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("memory allocation of %d bytes (align %d) failed", e.Layout.size, e.Layout.align)
}

// AllocErrorHandler is invoked when an allocator refuses a valid Layout. It
// must not return normally; typical handlers exit the process or panic.
type AllocErrorHandler func(l Layout)

var (
	allocErrorHandler atomic.Pointer[AllocErrorHandler]
	pkgLogger         atomic.Pointer[logging.Logger]
	exit              = os.Exit
)

func init() {
	pkgLogger.Store(logging.NewNopLogger())
}

// SetLogger sets the logger used by the package. A nil logger discards
// output.
func SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.NewNopLogger()
	}
	pkgLogger.Store(l)
}

func logger() *logging.Logger {
	return pkgLogger.Load()
}

// SetAllocErrorHandler installs h as the process-wide allocation failure
// handler and returns the previous one. A nil h restores the default, which
// logs the failure and exits with status 134.
func SetAllocErrorHandler(h AllocErrorHandler) AllocErrorHandler {
	var prev *AllocErrorHandler
	if h == nil {
		prev = allocErrorHandler.Swap(nil)
	} else {
		prev = allocErrorHandler.Swap(&h)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

// HandleAllocError reports that an allocator refused l. It never returns: if
// the installed handler returns, HandleAllocError panics with an *AllocError.
func HandleAllocError(l Layout) {
	if h := allocErrorHandler.Load(); h != nil {
		(*h)(l)
		panic(&AllocError{Layout: l})
	}
	defaultAllocErrorHandler(l)
}

func defaultAllocErrorHandler(l Layout) {
	err := &AllocError{Layout: l}
	logger().Error(context.Background(), "memory allocation failed", "size", l.size, "align", l.align)
	fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	exit(abortExitCode)
	panic(err)
}
