package docs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v81/github"
)

var (
	// ErrNotFound indicates an upstream 404 for a specific resource.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited indicates a rate-limit response. The code-search
	// endpoint has a much lower quota than the rest of the API, so search
	// failures carry a search-specific message.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrDecoding indicates a file whose content could not be decoded as
	// UTF-8 text, typically a binary file requested as text.
	ErrDecoding = errors.New("content could not be decoded as UTF-8 text")
)

// APIError is any other non-2xx upstream response, kept with its status
// code and message for diagnostics.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api error %d: %s", e.StatusCode, e.Message)
}

// classifyError converts a go-github call error into the operation error
// taxonomy. Transport failures (including timeouts) pass through as the
// generic API-error kind.
func classifyError(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: retry after %s", ErrRateLimited, rateErr.Rate.Reset.Time)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: secondary rate limit hit", ErrRateLimited)
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		if ghErr.Response.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%w: %s", ErrNotFound, ghErr.Message)
		}
		return &APIError{StatusCode: ghErr.Response.StatusCode, Message: ghErr.Message}
	}
	return err
}

// classifySearchError is classifyError with the search-endpoint policy: any
// 403 from code search is the rate-limited kind with a user-facing message,
// not a generic HTTP error.
func classifySearchError(err error) error {
	classified := classifyError(err)
	if errors.Is(classified, ErrRateLimited) {
		return fmt.Errorf("%w: search API rate limit exceeded, try again later", ErrRateLimited)
	}
	var apiErr *APIError
	if errors.As(classified, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: search API rate limit exceeded, try again later", ErrRateLimited)
	}
	return classified
}

// isNotFoundStatus reports whether an error is an upstream 404.
func isNotFoundStatus(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil &&
		ghErr.Response.StatusCode == http.StatusNotFound
}
