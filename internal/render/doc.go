// Package render produces textual views of a performance record list.
//
// Both renderers are pure functions over an already sorted, deduplicated
// slice: a fixed-width text table for terminals and log output, and a
// row-oriented table structure whose Markdown form escapes cell delimiters.
// No I/O happens here; callers decide where the output goes.
package render
