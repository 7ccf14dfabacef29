// Package analysis implements the red-flag analysis pipeline: the rule
// catalog and keyword scanner, speaker attribution, and the reconciler
// that merges, filters, deduplicates, and ranks findings from all
// detection sources.
//
// [Analyze] is the single entry point. Detection runs per mode
// (rules-only, ai-only, or hybrid); results are filtered by a minimum
// severity floor, deduplicated by (line, category) with ai findings
// winning collisions, attributed to speakers parsed from transcript
// labels, and stably sorted most-urgent-first.
//
// The remote language-model pass is abstracted behind [RemoteAnalyzer]
// and implemented by the ai package; this package performs no network
// or file I/O apart from [LoadRulesFile].
package analysis
