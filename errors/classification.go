package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: interrupted system calls, would-block, timeouts, busy resources.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: missing files, permission denials, invalid paths.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// retryableKinds lists the kinds that describe transient conditions. Every
// other kind is permanent.
var retryableKinds = map[Kind]bool{
	KindInterrupted:     true,
	KindWouldBlock:      true,
	KindTimedOut:        true,
	KindResourceBusy:    true,
	KindNetworkDown:     true,
	KindConnectionReset: true,
}

// Classification returns the default classification for the kind.
func (k Kind) Classification() ErrorClassification {
	if retryableKinds[k] {
		return ClassificationRetryable
	}
	return ClassificationPermanent
}
