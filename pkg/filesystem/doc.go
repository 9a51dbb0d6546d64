// Package filesystem provides implementations of the types.FS interface used
// to load display data from local files: the OS filesystem and an
// afero-backed one for in-memory tests.
package filesystem
