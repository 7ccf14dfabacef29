package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/animesh-sketch/red-flag-identifier/internal/analysis"
	"github.com/animesh-sketch/red-flag-identifier/internal/providers"
)

const (
	// DelayBetweenChunks is the blocking wait between API calls, sized
	// for a shared per-minute quota. The same full delay separates
	// rate-limit retry attempts.
	DelayBetweenChunks = 65 * time.Second

	// maxAttempts bounds rate-limit retries per chunk.
	maxAttempts = 3

	maxResponseTokens = 4096
)

// Sleeper blocks for d or until the context is canceled. Injectable so
// tests run without real delays.
type Sleeper func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithDelay overrides the inter-chunk (and retry) delay.
func WithDelay(d time.Duration) Option {
	return func(a *Adapter) { a.delay = d }
}

// WithSleeper overrides the blocking wait implementation.
func WithSleeper(s Sleeper) Option {
	return func(a *Adapter) { a.sleep = s }
}

// WithMaxChunkChars overrides the chunk character budget.
func WithMaxChunkChars(n int) Option {
	return func(a *Adapter) { a.maxChunkChars = n }
}

// WithRedactor installs a scrubbing pass applied to text before it
// leaves the process.
func WithRedactor(r func(string) string) Option {
	return func(a *Adapter) { a.redact = r }
}

// Adapter delegates detection to the remote capability while respecting
// its throughput limits: chunks are processed strictly sequentially with
// a blocking inter-chunk delay. This is a hard serialization point, not
// a parallelism opportunity; the quota is shared per minute.
type Adapter struct {
	completer     providers.Completer
	delay         time.Duration
	maxChunkChars int
	sleep         Sleeper
	redact        func(string) string
}

// New creates an Adapter around a remote completer.
func New(completer providers.Completer, opts ...Option) *Adapter {
	a := &Adapter{
		completer:     completer,
		delay:         DelayBetweenChunks,
		maxChunkChars: MaxChunkChars,
		sleep:         defaultSleep,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the remote pass over text and returns ai-sourced
// findings. Authentication and quota failures abort immediately;
// rate-limit failures are retried up to the attempt bound with a full
// delay between attempts; malformed responses contribute zero findings
// for their chunk and the pipeline continues.
func (a *Adapter) Analyze(ctx context.Context, text string) ([]analysis.Finding, error) {
	if a.redact != nil {
		text = a.redact(text)
	}

	chunks := SplitIntoChunks(text, a.maxChunkChars)

	var raw []rawFinding
	for i, chunk := range chunks {
		if i > 0 {
			if err := a.sleep(ctx, a.delay); err != nil {
				return nil, err
			}
		}
		chunkFindings, err := a.analyzeChunk(ctx, chunk, i+1, len(chunks))
		if err != nil {
			return nil, err
		}
		raw = append(raw, chunkFindings...)
	}

	findings := make([]analysis.Finding, 0, len(raw))
	for _, r := range raw {
		findings = append(findings, r.toFinding())
	}
	return findings, nil
}

func (a *Adapter) analyzeChunk(ctx context.Context, chunk Chunk, chunkNum, totalChunks int) ([]rawFinding, error) {
	req := providers.Request{
		SystemPrompt: SystemPrompt(),
		UserPrompt:   BuildUserPrompt(chunk, chunkNum, totalChunks),
		MaxTokens:    maxResponseTokens,
	}

	var resp providers.Response
	for attempt := 0; ; attempt++ {
		var err error
		resp, err = a.completer.Complete(ctx, req)
		if err == nil {
			break
		}
		switch {
		case providers.IsAuthError(err):
			return nil, fmt.Errorf("invalid API key, check your Anthropic API key and try again: %w", err)
		case providers.IsQuotaError(err):
			return nil, fmt.Errorf("insufficient credits, add credits at console.anthropic.com/settings/billing: %w", err)
		case providers.IsRateLimitError(err):
			if attempt < maxAttempts-1 {
				if serr := a.sleep(ctx, a.delay); serr != nil {
					return nil, serr
				}
				continue
			}
			return nil, fmt.Errorf("rate limit exceeded after %d retries, try again in a minute or use a shorter transcript: %w", maxAttempts, err)
		default:
			return nil, fmt.Errorf("AI analysis failed: %w", err)
		}
	}

	return parseResponse(resp.Content), nil
}

// rawFinding is the JSON structure the model is instructed to return.
type rawFinding struct {
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Quote       string `json:"quote"`
	Explanation string `json:"explanation"`
	LineHint    int    `json:"line_hint"`
}

func (r rawFinding) toFinding() analysis.Finding {
	f := analysis.Finding{
		Category:    r.Category,
		Severity:    analysis.Severity(r.Severity),
		Description: r.Explanation,
		MatchedText: r.Quote,
		LineNumber:  r.LineHint, // untrusted hint, may be 0 or out of range
		Context:     r.Quote,
		Source:      analysis.SourceAI,
	}
	if f.Category == "" {
		f.Category = "general"
	}
	if f.Severity == "" {
		f.Severity = analysis.SeverityMedium
	}
	if f.Description == "" {
		f.Description = "AI-detected red flag"
	}
	return f
}

// parseResponse strips optional markdown fences and decodes the JSON
// array. A malformed or non-JSON response degrades to zero findings for
// the chunk; a corrupted parse must not crash the pipeline.
func parseResponse(content string) []rawFinding {
	cleaned := strings.TrimSpace(content)
	if strings.HasPrefix(cleaned, "```") {
		if _, rest, ok := strings.Cut(cleaned, "\n"); ok {
			cleaned = rest
		}
		if idx := strings.LastIndex(cleaned, "```"); idx >= 0 {
			cleaned = cleaned[:idx]
		}
	}

	var findings []rawFinding
	if err := json.Unmarshal([]byte(cleaned), &findings); err != nil {
		return nil
	}
	return findings
}
