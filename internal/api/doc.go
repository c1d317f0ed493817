// Package api provides HTTP client functionality for communicating with
// the XposedOrNot API. It handles request/response serialization, query
// and header assembly, and automatic retry with exponential backoff for
// transient failures.
//
// # Request Execution
//
// [Client.Do] is the single entry point: it sends a [Request], enforces
// one timeout across the whole logical request (every attempt plus every
// backoff wait), and decodes a successful JSON response into the
// caller's value. The endpoint methods such as [Client.CheckEmail] are
// thin typed wrappers over Do.
//
// # Retry Behavior
//
// Failed requests are retried with exponential backoff: 1s, 2s, 4s, 8s,
// then capped at 10s. Transport failures and any 5xx response are
// retryable; among 4xx responses only 429 Too Many Requests is. The
// total number of attempts is [Config.MaxRetries]; zero still performs
// one attempt. A request whose overall timeout expires stops
// immediately, no matter how many attempts remain.
//
// # Error Handling
//
// Every failure is classified before it leaves the package:
//
//   - 401 becomes an [apierrors.AuthenticationError].
//   - 404 becomes an [apierrors.NotFoundError].
//   - 429 becomes an [apierrors.RateLimitError], carrying the server's
//     advisory retry delay when the body includes one.
//   - Exhausted transport failures become an [apierrors.NetworkError].
//   - An expired deadline becomes an [apierrors.TimeoutError].
//   - Everything else becomes an [apierrors.APIError].
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may
// call methods on a single Client simultaneously.
package api
