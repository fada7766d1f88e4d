package errors

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
)

// ErrorResponse is the flat, serializable form of an error, used for API
// responses and structured logs.
//
// Wrapped causes are intentionally excluded: they may contain internal
// implementation details. The path is included because it is the reason a
// path-carrying error exists.
type ErrorResponse struct {
	// Kind is the error kind, for example "NOT_FOUND".
	Kind string `json:"kind" cbor:"kind" yaml:"kind"`

	// Message is the human-readable error message.
	Message string `json:"message" cbor:"message" yaml:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification" cbor:"classification" yaml:"classification"`

	// OSCode is the OS error code, if any.
	OSCode *int32 `json:"os_code,omitempty" cbor:"os_code,omitempty" yaml:"os_code,omitempty"`

	// Errno is the symbolic name of OSCode, for example "ENOENT".
	Errno string `json:"errno,omitempty" cbor:"errno,omitempty" yaml:"errno,omitempty"`

	// Path is the path that caused the error, if any.
	Path string `json:"path,omitempty" cbor:"path,omitempty" yaml:"path,omitempty"`
}

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error

	// Core Deterministic Encoding: equal reports always produce equal bytes.
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("errors: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("errors: CBOR decoder initialization failed: " + err.Error())
	}
}

// ToJSON converts any error to an ErrorResponse suitable for serialization.
// Returns nil if err is nil.
//
// For errors that are not *Error, the kind is derived with KindOf and the
// message is err.Error().
//
// Example:
//
//	func handleError(w http.ResponseWriter, err error) {
//	    response := errors.ToJSON(err)
//	    if response == nil {
//	        return // No error
//	    }
//	    w.Header().Set("Content-Type", "application/json")
//	    json.NewEncoder(w).Encode(response)
//	}
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	resp := &ErrorResponse{
		Kind:           KindOf(err).String(),
		Message:        err.Error(),
		Classification: string(GetClassification(err)),
	}

	if e, ok := asError(err); ok {
		resp.Message = e.Message()
	}
	if code, ok := RawOSError(err); ok {
		resp.OSCode = &code
		resp.Errno = errnoName(code)
	}
	if p, ok := PathOf(err); ok {
		resp.Path = p
	}
	return resp
}

// ToCBOR encodes the ErrorResponse of err with deterministic CBOR. Returns
// nil, nil if err is nil.
func ToCBOR(err error) ([]byte, error) {
	if err == nil {
		return nil, nil
	}
	data, mErr := cborEnc.Marshal(ToJSON(err))
	if mErr != nil {
		return nil, Wrap(mErr, KindInvalidData, "failed to encode error response")
	}
	return data, nil
}

// DecodeCBOR decodes an ErrorResponse produced by ToCBOR.
func DecodeCBOR(data []byte) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := cborDec.Unmarshal(data, &resp); err != nil {
		return nil, Wrap(err, KindInvalidData, "failed to decode error response")
	}
	return &resp, nil
}

// MarshalJSON implements json.Marshaler, so an *Error can be marshaled
// directly.
//
// Example:
//
//	err := errors.NewPathError("/tmp/missing", 2)
//	jsonBytes, _ := json.Marshal(err)
//	// {"kind":"NOT_FOUND","message":"no such file or directory","classification":"PERMANENT","os_code":2,"errno":"ENOENT","path":"/tmp/missing"}
func (e *Error) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ToJSON(e))
	if err != nil {
		return nil, Wrap(err, KindInvalidData, "failed to marshal error response")
	}
	return data, nil
}

// MarshalCBOR implements cbor.Marshaler.
func (e *Error) MarshalCBOR() ([]byte, error) {
	return ToCBOR(e)
}
