// Package redact scrubs secrets and personal data from transcript text
// before it is sent to the remote analyzer. Replacement never adds or
// removes newlines, so findings keep valid line numbers.
package redact
