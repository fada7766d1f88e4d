package errors

import "fmt"

// Kind is the category of an I/O error.
//
// Kinds marshal as upper-case strings (for example "NOT_FOUND") for
// debuggability and natural JSON serialization.
type Kind uint8

const (
	// KindUncategorized is used for errors that do not fit any other kind,
	// including OS codes this platform does not decode.
	KindUncategorized Kind = iota

	// Filesystem errors.

	// KindNotFound indicates an entity was not found, often a file.
	KindNotFound
	// KindPermissionDenied indicates the operation lacked the necessary privileges.
	KindPermissionDenied
	// KindAlreadyExists indicates an entity already exists, often a file.
	KindAlreadyExists
	KindNotADirectory
	KindIsADirectory
	KindDirectoryNotEmpty
	KindReadOnlyFilesystem
	KindFilesystemLoop
	KindStaleNetworkFileHandle
	KindStorageFull
	KindNotSeekable
	KindFilesystemQuotaExceeded
	KindFileTooLarge
	KindResourceBusy
	KindExecutableFileBusy
	KindCrossesDevices
	KindTooManyLinks
	KindInvalidFilename

	// Network errors.

	KindConnectionRefused
	KindConnectionReset
	KindHostUnreachable
	KindNetworkUnreachable
	KindConnectionAborted
	KindNotConnected
	KindAddrInUse
	KindAddrNotAvailable
	KindNetworkDown
	KindBrokenPipe

	// Operation errors.

	// KindWouldBlock indicates the operation needs to block but was asked not to.
	KindWouldBlock
	// KindInvalidInput indicates a parameter was incorrect, such as a path
	// with an interior NUL byte.
	KindInvalidInput
	// KindInvalidData indicates data read was not valid for the operation.
	KindInvalidData
	// KindTimedOut indicates the operation's timeout expired.
	KindTimedOut
	KindWriteZero
	KindDeadlock
	KindArgumentListTooLong
	// KindInterrupted indicates the operation was interrupted and can
	// typically be retried.
	KindInterrupted
	KindUnsupported
	KindUnexpectedEOF
	// KindOutOfMemory indicates a memory request could not be satisfied,
	// including sizes that cannot be represented.
	KindOutOfMemory
	// KindOther is for custom errors that fit no other kind.
	KindOther

	kindCount
)

var kindNames = [kindCount]struct {
	name string
	desc string
}{
	KindUncategorized:           {"UNCATEGORIZED", "uncategorized error"},
	KindNotFound:                {"NOT_FOUND", "entity not found"},
	KindPermissionDenied:        {"PERMISSION_DENIED", "permission denied"},
	KindAlreadyExists:           {"ALREADY_EXISTS", "entity already exists"},
	KindNotADirectory:           {"NOT_A_DIRECTORY", "not a directory"},
	KindIsADirectory:            {"IS_A_DIRECTORY", "is a directory"},
	KindDirectoryNotEmpty:       {"DIRECTORY_NOT_EMPTY", "directory not empty"},
	KindReadOnlyFilesystem:      {"READ_ONLY_FILESYSTEM", "read-only filesystem or storage medium"},
	KindFilesystemLoop:          {"FILESYSTEM_LOOP", "filesystem loop or indirection limit"},
	KindStaleNetworkFileHandle:  {"STALE_NETWORK_FILE_HANDLE", "stale network file handle"},
	KindStorageFull:             {"STORAGE_FULL", "no storage space"},
	KindNotSeekable:             {"NOT_SEEKABLE", "seek on unseekable file"},
	KindFilesystemQuotaExceeded: {"FILESYSTEM_QUOTA_EXCEEDED", "filesystem quota exceeded"},
	KindFileTooLarge:            {"FILE_TOO_LARGE", "file too large"},
	KindResourceBusy:            {"RESOURCE_BUSY", "resource busy"},
	KindExecutableFileBusy:      {"EXECUTABLE_FILE_BUSY", "executable file busy"},
	KindCrossesDevices:          {"CROSSES_DEVICES", "cross-device link or rename"},
	KindTooManyLinks:            {"TOO_MANY_LINKS", "too many links"},
	KindInvalidFilename:         {"INVALID_FILENAME", "invalid filename"},
	KindConnectionRefused:       {"CONNECTION_REFUSED", "connection refused"},
	KindConnectionReset:         {"CONNECTION_RESET", "connection reset"},
	KindHostUnreachable:         {"HOST_UNREACHABLE", "host unreachable"},
	KindNetworkUnreachable:      {"NETWORK_UNREACHABLE", "network unreachable"},
	KindConnectionAborted:       {"CONNECTION_ABORTED", "connection aborted"},
	KindNotConnected:            {"NOT_CONNECTED", "not connected"},
	KindAddrInUse:               {"ADDRESS_IN_USE", "address in use"},
	KindAddrNotAvailable:        {"ADDRESS_NOT_AVAILABLE", "address not available"},
	KindNetworkDown:             {"NETWORK_DOWN", "network down"},
	KindBrokenPipe:              {"BROKEN_PIPE", "broken pipe"},
	KindWouldBlock:              {"WOULD_BLOCK", "operation would block"},
	KindInvalidInput:            {"INVALID_INPUT", "invalid input parameter"},
	KindInvalidData:             {"INVALID_DATA", "invalid data"},
	KindTimedOut:                {"TIMED_OUT", "timed out"},
	KindWriteZero:               {"WRITE_ZERO", "write zero"},
	KindDeadlock:                {"DEADLOCK", "deadlock"},
	KindArgumentListTooLong:     {"ARGUMENT_LIST_TOO_LONG", "argument list too long"},
	KindInterrupted:             {"INTERRUPTED", "operation interrupted"},
	KindUnsupported:             {"UNSUPPORTED", "unsupported"},
	KindUnexpectedEOF:           {"UNEXPECTED_EOF", "unexpected end of file"},
	KindOutOfMemory:             {"OUT_OF_MEMORY", "out of memory"},
	KindOther:                   {"OTHER", "other error"},
}

// String returns the upper-case name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k].name
	}
	return fmt.Sprintf("KIND(%d)", uint8(k))
}

// Description returns a short lower-case description, used as the message of
// errors built with FromKind.
func (k Kind) Description() string {
	if k < kindCount {
		return kindNames[k].desc
	}
	return kindNames[KindUncategorized].desc
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind returns the Kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k := range kindCount {
		if kindNames[k].name == name {
			return k, nil
		}
	}
	return KindUncategorized, fmt.Errorf("unknown error kind %q", name)
}
