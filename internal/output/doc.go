// Package output renders analysis reports for display or machine
// consumption.
//
// Two formats are supported:
//   - text: human-readable colorized terminal output (default)
//   - json: full structured report with per-severity and per-category
//     summaries
//
// Use [GetWriter] to obtain a [Writer] for a format string, or
// [WriteReport] to handle destination selection.
package output
