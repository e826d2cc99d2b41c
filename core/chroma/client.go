package chroma

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Client talks to a running server's housekeeping endpoints.
type Client struct {
	baseURL string
	timeout time.Duration
}

type heartbeatResponse struct {
	Nanoseconds int64 `json:"nanosecond heartbeat"`
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), timeout: timeout}
}

// Heartbeat returns the server clock in nanoseconds.
func (c *Client) Heartbeat() (int64, error) {
	var resp heartbeatResponse
	code, body, errs := fiber.Get(c.baseURL + "/api/v1/heartbeat").Timeout(c.timeout).Struct(&resp)
	if err := c.check("heartbeat", code, body, errs); err != nil {
		return 0, err
	}
	return resp.Nanoseconds, nil
}

// Version returns the server version string.
func (c *Client) Version() (string, error) {
	var version string
	code, body, errs := fiber.Get(c.baseURL + "/api/v1/version").Timeout(c.timeout).Struct(&version)
	if err := c.check("version", code, body, errs); err != nil {
		return "", err
	}
	return version, nil
}

func (c *Client) check(op string, code int, body []byte, errs []error) error {
	if code != 0 && code != fiber.StatusOK {
		return fmt.Errorf("chroma %s: unexpected status %d: %s", op, code, strings.TrimSpace(string(body)))
	}
	if len(errs) > 0 {
		return fmt.Errorf("chroma %s: %w", op, errors.Join(errs...))
	}
	return nil
}
