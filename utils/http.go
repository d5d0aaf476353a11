package utils

import (
	"crypto/tls"
	"net/http"
	"time"
)

// DefaultUserAgent is sent when a caller does not provide one
const DefaultUserAgent = "ResumeCoach/1.0"

// BrowserUserAgent is the minimal browser identification accepted by public search pages
const BrowserUserAgent = "Mozilla/5.0"

// NewHTTPClient creates a configured HTTP client for external requests.
// Requests without a User-Agent header get userAgent.
func NewHTTPClient(timeout time.Duration, userAgent string) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: UserAgentMiddleware(transport, userAgent),
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

// UserAgentMiddleware adds a user agent header to requests
func UserAgentMiddleware(next http.RoundTripper, userAgent string) http.RoundTripper {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &userAgentTransport{next: next, userAgent: userAgent}
}

type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.next.RoundTrip(req)
}
