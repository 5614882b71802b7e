// Host invocation channel and availability detection.
//
// The companion runs either standalone (demo mode, in-process mocks) or
// attached to a host engine that owns the verse database and the LLM
// integration. The host is reached through a single generic primitive:
// invoke a named operation with named arguments and decode the typed
// result. Availability is re-checked on every facade call so a host can
// attach mid-session during debugging.
package host

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// EnvHostAddr names the environment variable carrying the host engine
// address. Its presence is what makes the companion run in live mode.
const EnvHostAddr = "SCRIPTURE_HOST_ADDR"

// ErrUnavailable is returned when an invocation is attempted with no
// host configured. The dispatching services keep this from happening in
// practice; defensive callers treat it like falling back to mock.
var ErrUnavailable = errors.New("host channel unavailable")

// Available reports whether a host engine is reachable in the current
// runtime. It reads the environment fresh on every call, never caches,
// and never fails.
func Available() bool {
	return strings.TrimSpace(os.Getenv(EnvHostAddr)) != ""
}

// Channel is the single primitive every live facade is built on.
type Channel interface {
	Invoke(ctx context.Context, op string, args map[string]any, out any) error
}

// InvokeError is a typed failure reported by the host for a named
// operation. Code is one of the wire codes below.
type InvokeError struct {
	Op      string `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Wire error codes shared with the host engine.
const (
	CodeNotFound         = "not_found"
	CodeInvalidReference = "invalid_reference"
	CodeAIProviderError  = "ai_provider_error"
)

func (e *InvokeError) Error() string {
	return fmt.Sprintf("invoke %s: %s (%s)", e.Op, e.Message, e.Code)
}

// HTTPChannel invokes host operations as JSON POSTs against
// {addr}/invoke/{op}.
type HTTPChannel struct {
	addr   string
	client *http.Client
}

func NewHTTPChannel(addr string) *HTTPChannel {
	return &HTTPChannel{
		addr: strings.TrimRight(addr, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewChannel builds a channel from the current environment, or nil when
// no host address is configured.
func NewChannel() Channel {
	addr := strings.TrimSpace(os.Getenv(EnvHostAddr))
	if addr == "" {
		return nil
	}
	return NewHTTPChannel(addr)
}

type errorEnvelope struct {
	Error *InvokeError `json:"error"`
}

func (c *HTTPChannel) Invoke(ctx context.Context, op string, args map[string]any, out any) error {
	if c == nil || c.addr == "" {
		return ErrUnavailable
	}

	if args == nil {
		args = map[string]any{}
	}
	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("invoke %s: encode args: %w", op, err)
	}

	url := fmt.Sprintf("%s/invoke/%s", c.addr, op)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("invoke %s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("invoke %s: %w", op, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("invoke %s: read response: %w", op, err)
	}

	if resp.StatusCode != http.StatusOK {
		var envelope errorEnvelope
		if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Error != nil {
			envelope.Error.Op = op
			return envelope.Error
		}
		return &InvokeError{
			Op:      op,
			Code:    "internal",
			Message: fmt.Sprintf("host returned status %d", resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("invoke %s: decode result: %w", op, err)
	}
	return nil
}
