// Package providers implements the Completer interface for the remote
// text-understanding capability.
//
// The only supported provider is Anthropic's Messages API. Failures are
// classified into a small taxonomy of authentication (fatal, no retry),
// quota/billing (fatal, no retry), and rate limit (retryable by the
// caller), exposed through [IsAuthError], [IsQuotaError], and
// [IsRateLimitError]. Retry policy itself lives with the caller (the ai
// package), which owns the rate-limit delay budget.
//
// HTTP clients are plain net/http; tests redirect calls to local
// httptest servers through a URL-rewriting transport.
package providers
