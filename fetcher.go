package coldemail

import "context"

// Fetcher retrieves raw HTML from URLs over HTTP.
// Implementations must present a realistic browser user agent and apply a
// request timeout; JavaScript rendering is out of scope.
type Fetcher interface {
	// Fetch performs a GET request and returns the HTTP status code and
	// the response body. A non-200 status is not an error; callers decide
	// whether to process the body. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (status int, html string, err error)
}
