// Package userclient asks the user service whether a user exists.
package userclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-user-orders/internal/apperr"
)

const DefaultTimeout = 5 * time.Second

// Client calls GET {BaseURL}/users/{id}/exists once per check: no retry,
// no cache.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger
}

func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Log:     log,
	}
}

// Exists reports true on 2xx and false on 404. Every other outcome,
// including a timeout, is a RemoteValidation error and never a false.
func (c *Client) Exists(ctx context.Context, userID int64) (bool, error) {
	url := fmt.Sprintf("%s/users/%d/exists", c.BaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, c.fail(userID, err)
	}
	if id := middleware.GetReqID(ctx); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return false, c.fail(userID, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.Log.Debug("user exists", zap.Int64("user_id", userID))
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		c.Log.Debug("user does not exist", zap.Int64("user_id", userID))
		return false, nil
	default:
		return false, c.fail(userID, fmt.Errorf("user service responded %s", resp.Status))
	}
}

func (c *Client) fail(userID int64, cause error) error {
	c.Log.Error("user existence check failed", zap.Int64("user_id", userID), zap.Error(cause))
	return apperr.RemoteValidation("Error validating user: "+cause.Error(), cause)
}
