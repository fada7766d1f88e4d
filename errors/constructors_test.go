package errors

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		message string
	}{
		{"not found", KindNotFound, "resource not found"},
		{"invalid input", KindInvalidInput, "invalid email format"},
		{"empty message", KindOther, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.kind, tt.message)
			require.NotNil(t, err)
			require.Equal(t, tt.kind, err.Kind())
			require.Equal(t, tt.message, err.Message())
			require.Nil(t, err.Unwrap())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(KindInvalidFilename, "name too long: %d bytes (max %d)", 300, 255)
	require.Equal(t, "name too long: 300 bytes (max 255)", err.Message())
	require.Equal(t, KindInvalidFilename, err.Kind())
}

func TestFromKind(t *testing.T) {
	err := FromKind(KindUnsupported)
	require.Nil(t, err.p)
	require.Equal(t, tagSimple, err.tag())
	require.Equal(t, KindUnsupported, err.Kind())
}

func TestFromRawOSError(t *testing.T) {
	err := FromRawOSError(2)
	require.Nil(t, err.p)
	require.Equal(t, tagOS, err.tag())
	require.Equal(t, syscall.Errno(2).Error(), err.Message())
	require.Contains(t, err.Error(), "(os error 2)")
}

func TestFromErrno(t *testing.T) {
	require.NoError(t, FromErrno(0))

	err := FromErrno(syscall.Errno(17))
	require.Error(t, err)
	code, ok := RawOSError(err)
	require.True(t, ok)
	require.Equal(t, int32(17), code)
}
