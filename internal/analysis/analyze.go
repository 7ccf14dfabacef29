package analysis

import (
	"context"
	"fmt"
	"sort"
)

// RemoteAnalyzer is the external text-understanding capability: given
// text, it returns ai-sourced candidate findings. Implemented by the
// ai package; nil means the remote pass is skipped.
type RemoteAnalyzer interface {
	Analyze(ctx context.Context, text string) ([]Finding, error)
}

// Request describes a single analysis invocation. Each invocation is
// independent and stateless aside from the shared read-only catalogs.
type Request struct {
	Text        string
	Mode        Mode
	MinSeverity Severity
	Catalog     []Rule // built-in catalog when nil
	CustomRules []Rule
	Remote      RemoteAnalyzer
}

// Analyze runs the full pipeline on the request text: selected detectors
// per mode, severity floor filter, deduplication, speaker attribution,
// and a stable sort by severity (most urgent first).
//
// Credential checks for modes that require the remote analyzer belong to
// the caller; here a nil Remote simply contributes no ai findings.
func Analyze(ctx context.Context, req Request) ([]Finding, error) {
	mode := req.Mode
	if mode == "" {
		mode = ModeHybrid
	}
	if !ValidMode(mode) {
		return nil, fmt.Errorf("unknown analysis mode %q", mode)
	}
	floor := req.MinSeverity
	if floor == "" {
		floor = SeverityLow
	}
	if !ValidSeverity(floor) {
		return nil, fmt.Errorf("unknown severity %q", floor)
	}

	var findings []Finding

	if mode.RunsRules() {
		catalog := req.Catalog
		if catalog == nil {
			catalog = BuiltinRules()
		}
		findings = append(findings, Scan(req.Text, catalog, SourceKeyword)...)
		if len(req.CustomRules) > 0 {
			findings = append(findings, Scan(req.Text, req.CustomRules, SourceCustom)...)
		}
	}

	if mode.RequiresAI() && req.Remote != nil {
		aiFindings, err := req.Remote.Analyze(ctx, req.Text)
		if err != nil {
			return nil, fmt.Errorf("remote analysis: %w", err)
		}
		findings = append(findings, aiFindings...)
	}

	findings = filterBySeverity(findings, floor)
	findings = Deduplicate(findings)
	attachSpeakers(findings, req.Text)

	sort.SliceStable(findings, func(i, j int) bool {
		return SeverityRank(findings[i].Severity) < SeverityRank(findings[j].Severity)
	})

	return findings, nil
}

func filterBySeverity(findings []Finding, floor Severity) []Finding {
	kept := findings[:0]
	for _, f := range findings {
		if MeetsFloor(f.Severity, floor) {
			kept = append(kept, f)
		}
	}
	return kept
}

// attachSpeakers is the only post-hoc mutation a finding ever sees. AI
// line hints outside the document attribute to no one.
func attachSpeakers(findings []Finding, text string) {
	if len(findings) == 0 {
		return
	}
	speakers := AttributeSpeakers(text)
	for i := range findings {
		findings[i].Speaker = speakerForLine(speakers, findings[i].LineNumber)
	}
}
