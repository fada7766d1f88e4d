package errors

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"unsafe"

	"github.com/jmgilman/go/oserr/pathbuf"
)

// tag selects the representation held by an Error.
type tag uint8

const (
	tagOS tag = iota
	tagSimple
	tagSimpleMessage
	tagCustom
	tagPath

	tagMask = 0x7
)

// noCopy lets go vet flag copies of Error.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Error is the concrete error type of the package.
//
// The low bits of bits hold the tag. tagSimple, tagSimpleMessage and
// tagCustom keep the Kind in bits 8..15; tagOS keeps the OS code in the high
// 32 bits. p is nil for tagOS and tagSimple, a *message or *custom for the
// message forms, and the pathbuf.Raw handle for tagPath.
type Error struct {
	_    noCopy
	p    unsafe.Pointer
	bits uint64
}

type message struct {
	kind Kind
	text string
}

type custom struct {
	kind  Kind
	text  string
	cause error
}

func (e *Error) tag() tag {
	return tag(e.bits & tagMask)
}

func (e *Error) storedKind() Kind {
	return Kind(e.bits >> 8)
}

func (e *Error) raw() pathbuf.Raw {
	return pathbuf.RawFromPointer(e.p)
}

// osCode returns the OS code for tagOS and tagPath errors.
func (e *Error) osCode() (int32, bool) {
	switch e.tag() {
	case tagOS:
		return int32(uint32(e.bits >> 32)), true
	case tagPath:
		code := pathbuf.CodeFromRaw(e.raw())
		runtime.KeepAlive(e)
		return code, true
	default:
		return 0, false
	}
}

// Kind returns the category of the error. For errors carrying an OS code the
// kind is decoded from the code.
func (e *Error) Kind() Kind {
	if code, ok := e.osCode(); ok {
		return decodeErrorKind(code)
	}
	switch e.tag() {
	case tagSimpleMessage:
		return (*message)(e.p).kind
	case tagCustom:
		return (*custom)(e.p).kind
	default:
		return e.storedKind()
	}
}

// Classification returns whether the error is retryable or permanent.
func (e *Error) Classification() ErrorClassification {
	return e.Kind().Classification()
}

// Message returns the human-readable message without the kind prefix or the
// wrapped cause.
func (e *Error) Message() string {
	if code, ok := e.osCode(); ok {
		return osMessage(code)
	}
	switch e.tag() {
	case tagSimpleMessage:
		return (*message)(e.p).text
	case tagCustom:
		return (*custom)(e.p).text
	default:
		return e.storedKind().Description()
	}
}

// RawOSError returns the OS error code, if the error carries one.
func (e *Error) RawOSError() (int32, bool) {
	return e.osCode()
}

// Path returns a copy of the path attached to the error, if any.
func (e *Error) Path() (string, bool) {
	if e.tag() != tagPath {
		return "", false
	}
	p := pathbuf.CStrFromRaw(e.raw()).String()
	runtime.KeepAlive(e)
	return p, true
}

// Unwrap returns the wrapped cause for errors built with Wrap, and the
// syscall.Errno for errors carrying an OS code.
func (e *Error) Unwrap() error {
	if code, ok := e.osCode(); ok {
		if code == 0 {
			return nil
		}
		return syscall.Errno(code)
	}
	if e.tag() == tagCustom {
		return (*custom)(e.p).cause
	}
	return nil
}

// Error returns the string representation of the error.
//
// Format: "[KIND] message", followed by " (os error N)" for OS codes, the
// quoted path for path-carrying errors, and ": cause" for wrapped errors.
func (e *Error) Error() string {
	// The path buffer is freed by a cleanup once e is unreachable.
	defer runtime.KeepAlive(e)

	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(e.Kind().String())
	sb.WriteString("] ")

	switch e.tag() {
	case tagOS, tagPath:
		code, _ := e.osCode()
		sb.WriteString(osMessage(code))
		sb.WriteString(" (os error ")
		sb.WriteString(strconv.FormatInt(int64(code), 10))
		sb.WriteByte(')')
		if e.tag() == tagPath {
			sb.WriteString(" at path ")
			sb.WriteString(strconv.Quote(pathbuf.CStrFromRaw(e.raw()).UnsafeString()))
		}
	case tagCustom:
		c := (*custom)(e.p)
		sb.WriteString(c.text)
		if c.cause != nil {
			if c.text != "" {
				sb.WriteString(": ")
			}
			sb.WriteString(c.cause.Error())
		}
	default:
		sb.WriteString(e.Message())
	}
	return sb.String()
}

// Format implements fmt.Formatter. The %+v verb adds the representation and
// the classification.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s (%s, %s)", e.Error(), e.tag(), e.Classification())
			return
		}
		fallthrough
	case 's':
		_, _ = s.Write([]byte(e.Error()))
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		fmt.Fprintf(s, "%%!%c(*errors.Error=%s)", verb, e.Error())
	}
}

func (t tag) String() string {
	switch t {
	case tagOS:
		return "os"
	case tagSimple:
		return "simple"
	case tagSimpleMessage:
		return "message"
	case tagCustom:
		return "custom"
	case tagPath:
		return "path"
	default:
		return "tag(" + strconv.Itoa(int(t)) + ")"
	}
}

func osMessage(code int32) string {
	return syscall.Errno(code).Error()
}
