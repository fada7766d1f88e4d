// Package pathbuf stores a filesystem path and an OS error code in a single
// allocation.
//
// A packed buffer is a fixed header followed directly by the path bytes and a
// NUL terminator:
//
//	+----------------+---------+---------------------+----+
//	| lenWithNul     | osCode  | path bytes ...      | 00 |
//	| uintptr        | int32   | lenWithNul-1 bytes  |    |
//	+----------------+---------+---------------------+----+
//	^ 8-byte aligned            ^ header size rounded up to 8
//
// No capacity is stored. Release recomputes the allocation Layout from
// lenWithNul, so the layout function must give the same answer at
// construction and destruction.
//
// # Owning and raw access
//
// Buf owns its allocation and frees it with Release. IntoRaw moves ownership
// into a Raw, a single pointer suitable for inline storage in a larger value.
// Raw has no safe operations: FromRaw, CodeFromRaw and CStrFromRaw trust the
// caller that the handle came from IntoRaw, is still live, and (for FromRaw)
// is reconstructed at most once. Breaking those rules is undefined behavior;
// the invariants build tag adds best-effort checks.
//
// # Concurrency
//
// A Buf may be moved to another goroutine but must not be shared: SetCode
// needs exclusive access, and there is no locking.
package pathbuf
