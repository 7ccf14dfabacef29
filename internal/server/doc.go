// Package server is the HTTP front end: a single-page form at / and a
// JSON analysis endpoint at POST /analyze. Credential checks for AI
// modes happen here, before any text is processed.
package server
