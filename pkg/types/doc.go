// Package types defines the interfaces shared across the display packages:
// the per-MIME representation capabilities that values opt into, and the
// Formatter, Publisher, FS and Fetcher collaborators that display functions
// receive explicitly.
package types
