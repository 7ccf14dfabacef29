package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animesh-sketch/red-flag-identifier/internal/analysis"
	"github.com/animesh-sketch/red-flag-identifier/internal/providers"
)

// fakeCompleter pops one scripted result per Complete call; the last
// result repeats if calls outnumber the script.
type fakeCompleter struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (f *fakeCompleter) Complete(_ context.Context, req providers.Request) (providers.Response, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, req.UserPrompt)
	if i < len(f.errs) && f.errs[i] != nil {
		return providers.Response{}, f.errs[i]
	}
	content := ""
	if len(f.responses) > 0 {
		if i >= len(f.responses) {
			i = len(f.responses) - 1
		}
		content = f.responses[i]
	}
	return providers.Response{Content: content}, nil
}

func (f *fakeCompleter) Name() string { return "fake" }

type sleepRecorder struct {
	slept []time.Duration
	err   error
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.slept = append(s.slept, d)
	return s.err
}

func newTestAdapter(c providers.Completer, rec *sleepRecorder, opts ...Option) *Adapter {
	base := []Option{WithSleeper(rec.sleep)}
	return New(c, append(base, opts...)...)
}

func TestAnalyze_ParsesFindings(t *testing.T) {
	completer := &fakeCompleter{responses: []string{
		`[{"category": "sales/fraud", "severity": "high", "quote": "off the books", "explanation": "hidden transaction", "line_hint": 2}]`,
	}}
	a := newTestAdapter(completer, &sleepRecorder{})

	findings, err := a.Analyze(context.Background(), "line one\nit was off the books")
	require.NoError(t, err)
	require.Len(t, findings, 1)

	f := findings[0]
	assert.Equal(t, "sales/fraud", f.Category)
	assert.Equal(t, analysis.SeverityHigh, f.Severity)
	assert.Equal(t, "off the books", f.MatchedText)
	assert.Equal(t, "hidden transaction", f.Description)
	assert.Equal(t, 2, f.LineNumber)
	assert.Equal(t, analysis.SourceAI, f.Source)
}

func TestAnalyze_FencedResponse(t *testing.T) {
	completer := &fakeCompleter{responses: []string{
		"```json\n[{\"category\": \"general\", \"severity\": \"low\", \"quote\": \"q\"}]\n```",
	}}
	a := newTestAdapter(completer, &sleepRecorder{})

	findings, err := a.Analyze(context.Background(), "text")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "general", findings[0].Category)
}

func TestAnalyze_MalformedResponseYieldsNoFindings(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"I could not find anything notable."}}
	a := newTestAdapter(completer, &sleepRecorder{})

	findings, err := a.Analyze(context.Background(), "text")
	require.NoError(t, err, "unparseable responses degrade, never fail")
	assert.Empty(t, findings)
}

func TestAnalyze_FieldDefaults(t *testing.T) {
	completer := &fakeCompleter{responses: []string{`[{"quote": "something"}]`}}
	a := newTestAdapter(completer, &sleepRecorder{})

	findings, err := a.Analyze(context.Background(), "text")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "general", findings[0].Category)
	assert.Equal(t, analysis.SeverityMedium, findings[0].Severity)
	assert.Equal(t, "AI-detected red flag", findings[0].Description)
	assert.Equal(t, "something", findings[0].Context)
}

func TestAnalyze_InterChunkDelay(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"[]"}}
	rec := &sleepRecorder{}
	a := newTestAdapter(completer, rec, WithMaxChunkChars(10), WithDelay(time.Minute))

	_, err := a.Analyze(context.Background(), "aaaa\nbbbb\ncccc\ndddd")
	require.NoError(t, err)
	assert.Equal(t, 2, completer.calls)
	assert.Equal(t, []time.Duration{time.Minute}, rec.slept,
		"one delay between two chunks, none before the first")
}

func TestAnalyze_ChunkPromptsCarryPosition(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"[]"}}
	a := newTestAdapter(completer, &sleepRecorder{}, WithMaxChunkChars(10))

	_, err := a.Analyze(context.Background(), "aaaa\nbbbb\ncccc\ndddd")
	require.NoError(t, err)
	require.Len(t, completer.prompts, 2)
	assert.Contains(t, completer.prompts[0], "chunk 1/2")
	assert.Contains(t, completer.prompts[1], "chunk 2/2")
	assert.Contains(t, completer.prompts[1], "[Line 3] cccc")
}

func TestAnalyze_RateLimitRetriesThenSucceeds(t *testing.T) {
	completer := &fakeCompleter{
		errs:      []error{providers.NewRateLimitError("slow down"), nil},
		responses: []string{"", "[]"},
	}
	rec := &sleepRecorder{}
	a := newTestAdapter(completer, rec, WithDelay(30*time.Second))

	_, err := a.Analyze(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, 2, completer.calls)
	assert.Equal(t, []time.Duration{30 * time.Second}, rec.slept,
		"full delay before the retry")
}

func TestAnalyze_RateLimitExhaustsAttempts(t *testing.T) {
	rl := providers.NewRateLimitError("slow down")
	completer := &fakeCompleter{errs: []error{rl, rl, rl}}
	rec := &sleepRecorder{}
	a := newTestAdapter(completer, rec, WithDelay(time.Second))

	_, err := a.Analyze(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
	assert.Equal(t, 3, completer.calls)
	assert.Len(t, rec.slept, 2, "a delay separates each retry, none after the last")
}

func TestAnalyze_AuthErrorFatal(t *testing.T) {
	completer := &fakeCompleter{errs: []error{providers.NewAuthError("bad key")}}
	a := newTestAdapter(completer, &sleepRecorder{})

	_, err := a.Analyze(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid API key")
	assert.True(t, providers.IsAuthError(err), "classification survives wrapping")
	assert.Equal(t, 1, completer.calls, "no retry on authentication failure")
}

func TestAnalyze_QuotaErrorFatal(t *testing.T) {
	completer := &fakeCompleter{errs: []error{providers.NewQuotaError("empty balance")}}
	a := newTestAdapter(completer, &sleepRecorder{})

	_, err := a.Analyze(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient credits")
	assert.Contains(t, err.Error(), "console.anthropic.com/settings/billing")
	assert.Equal(t, 1, completer.calls)
}

func TestAnalyze_OtherErrorWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	completer := &fakeCompleter{errs: []error{boom}}
	a := newTestAdapter(completer, &sleepRecorder{})

	_, err := a.Analyze(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI analysis failed")
	assert.ErrorIs(t, err, boom)
}

func TestAnalyze_CanceledDuringDelay(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"[]"}}
	rec := &sleepRecorder{err: context.Canceled}
	a := newTestAdapter(completer, rec, WithMaxChunkChars(10))

	_, err := a.Analyze(context.Background(), "aaaa\nbbbb\ncccc\ndddd")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, completer.calls, "cancellation stops before the next chunk")
}

func TestAnalyze_RedactorAppliedBeforeSend(t *testing.T) {
	completer := &fakeCompleter{responses: []string{"[]"}}
	a := newTestAdapter(completer, &sleepRecorder{}, WithRedactor(func(s string) string {
		return "[REDACTED]"
	}))

	_, err := a.Analyze(context.Background(), "api_key=sk-ant-secret")
	require.NoError(t, err)
	require.Len(t, completer.prompts, 1)
	assert.NotContains(t, completer.prompts[0], "sk-ant-secret")
	assert.Contains(t, completer.prompts[0], "[REDACTED]")
}
