// Package neutral reads FEMAP Neutral files: a free-form, block-oriented
// ASCII format emitted by the FEMAP finite-element pre/post-processor.
//
// A neutral file is a sequence of blocks, each delimited by a line
// containing exactly "   -1" and tagged with an integer block ID on the
// line that follows the opening delimiter. Block order is not guaranteed,
// and a given block ID may appear more than once; BlockIndex.Lines
// concatenates the Lines of every instance in appearance order, and each
// extractor reads its block through it, so extractors always see the
// union of all instances.
//
// This package only scans and extracts. It does not validate physical
// units, does not interpret material payloads beyond the material ID, and
// never raises for a single malformed record -- a malformed record is
// skipped and recorded in an Issues log so that a caller can decide how to
// surface it.
package neutral
