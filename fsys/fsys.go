package fsys

// Access modes for Access. The values match the POSIX R_OK, W_OK, X_OK and
// F_OK constants.
const (
	AccessExists uint32 = 0x0
	AccessExec   uint32 = 0x1
	AccessWrite  uint32 = 0x2
	AccessRead   uint32 = 0x4
)

// ParseAccessMode parses a mode string made of the letters r, w and x, or
// the single letter f for existence.
func ParseAccessMode(s string) (uint32, bool) {
	if s == "f" {
		return AccessExists, true
	}
	if s == "" {
		return 0, false
	}

	var mode uint32
	for _, c := range s {
		switch c {
		case 'r':
			mode |= AccessRead
		case 'w':
			mode |= AccessWrite
		case 'x':
			mode |= AccessExec
		default:
			return 0, false
		}
	}
	return mode, true
}
