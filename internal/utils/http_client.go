package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
//
// A non-empty token is sent as "Authorization: Bearer {token}" on every
// request. A positive timeout bounds every request. Each call returns an
// independent client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.example.com", "token", 10*time.Second)
//	resp, err := client.R().Get("/items/motoboys")
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if token != "" {
		client.SetAuthToken(token)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
