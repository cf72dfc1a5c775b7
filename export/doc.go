// Package export writes the flat outputs of a generation run: the degree
// distribution CSV, and optionally the edge list as CSV or Parquet.
//
// Every Write* function is atomic: data goes to a temporary file in the
// destination directory, is synced, and is renamed over the target. On any
// failure the temporary file is removed and the destination is untouched.
//
// Errors:
//
//	ErrWrite     - any I/O failure while producing a file (wraps the OS cause).
//	ErrBadHeader - a decoded CSV does not start with the expected header.
//	ErrBadRecord - a decoded CSV record has the wrong arity or a non-integer field.
package export
