// Package ai adapts the remote language-model capability into the
// analysis pipeline.
//
// Input text is split into line-aligned chunks under a fixed character
// budget, each chunk is sent sequentially with a blocking inter-chunk
// delay to respect the provider's shared per-minute quota, and the
// model's JSON output is parsed into ai-sourced findings with untrusted
// line hints. Rate-limit failures retry a bounded number of times with
// the same full delay; authentication and billing failures abort
// immediately. The delay is injectable for deterministic tests.
package ai
