package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/Evecotrip/god-aurumx-sub000/internal/logger"
	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

// Fallback messages used when the platform API gives us nothing better.
const (
	msgUnreachable = "Unable to reach the platform API"
	msgFailed      = "Platform API request failed"
)

// Error is the uniform failure every client call resolves to. Message is
// safe to show an operator: it is either the platform API's own message
// or one of the generic fallbacks above.
type Error struct {
	StatusCode int    // zero on transport-level failures
	Message    string // operator-visible message
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Caller performs HTTP calls against the platform API and normalizes
// every outcome into the {success, message, data, pagination} envelope.
// It applies no retries and no caching.
type Caller struct {
	baseURL string
	client  *http.Client
}

// NewCaller creates a Caller for the given base URL. The URL must be
// non-empty; main treats a missing PLATFORM_API_BASE_URL as fatal.
func NewCaller(baseURL string, timeout time.Duration) *Caller {
	return &Caller{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// JSON performs a JSON request. A non-empty token is sent as a bearer
// credential. The returned envelope always has Success=true; failures
// of any kind come back as *Error.
func (c *Caller) JSON(ctx context.Context, method, path, token string, body any) (*models.Envelope, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			logger.Log.Errorw("failed to marshal request body", "path", path, "error", err)
			return nil, &Error{Message: msgFailed}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		logger.Log.Errorw("failed to build request", "path", path, "error", err)
		return nil, &Error{Message: msgFailed}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, token)
}

// Multipart performs a multipart/form-data upload with a single file
// field. The request Content-Type is left to the multipart writer so
// the boundary is set correctly.
func (c *Caller) Multipart(ctx context.Context, path, token, field, filename string, content []byte) (*models.Envelope, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		logger.Log.Errorw("failed to build multipart body", "path", path, "error", err)
		return nil, &Error{Message: msgFailed}
	}
	if _, err := part.Write(content); err != nil {
		logger.Log.Errorw("failed to write multipart content", "path", path, "error", err)
		return nil, &Error{Message: msgFailed}
	}
	if err := w.Close(); err != nil {
		logger.Log.Errorw("failed to finalize multipart body", "path", path, "error", err)
		return nil, &Error{Message: msgFailed}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		logger.Log.Errorw("failed to build upload request", "path", path, "error", err)
		return nil, &Error{Message: msgFailed}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, token)
}

func (c *Caller) do(req *http.Request, token string) (*models.Envelope, error) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log.Errorw("platform API call failed",
			"method", req.Method, "path", req.URL.Path, "error", err)
		return nil, &Error{Message: msgUnreachable}
	}
	defer resp.Body.Close()

	var env models.Envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	logger.Log.Infow("platform API call",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"success", env.Success,
	)

	if decodeErr != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Message: msgFailed}
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = msgFailed
		}
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	return &env, nil
}

// decodeData unmarshals the envelope's data field into out. A missing
// data field on a successful envelope is treated as a failure.
func decodeData(env *models.Envelope, out any) error {
	if env.Data == nil {
		return &Error{Message: msgFailed}
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		logger.Log.Errorw("failed to decode envelope data", "error", err)
		return &Error{Message: msgFailed}
	}
	return nil
}
