// Redflag scans transcripts and free text for red flags across
// compliance, HR, fraud, and custom categories.
//
// Deterministic keyword rules run locally; hybrid and ai-only modes add
// a remote AI analysis pass. Findings are deduplicated, attributed to
// speakers, and ranked by severity.
//
// Usage:
//
//	redflag analyze transcript.txt            # keyword rules + AI (hybrid)
//	redflag analyze - --mode rules-only       # stdin, rules only
//	redflag analyze call.txt --severity high  # only high and critical
//	redflag rules list                        # show the built-in catalog
//	redflag serve --port 5000                 # web interface
package main
