package export

import "errors"

var (
	// ErrWrite marks output failures; the OS cause is wrapped alongside it.
	ErrWrite = errors.New("export: write failed")

	// ErrBadHeader indicates a CSV header other than the fixed schema.
	ErrBadHeader = errors.New("export: unexpected header")

	// ErrBadRecord indicates a malformed CSV record.
	ErrBadRecord = errors.New("export: malformed record")
)
