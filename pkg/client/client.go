package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/naveenspark/agora/internal/logger"
	"github.com/naveenspark/agora/pkg/domain"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 10 << 20
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTopicRequest is the payload for creating a topic.
type CreateTopicRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Client is the forum API client. Its session is the only state it keeps.
type Client struct {
	baseURL    string
	session    *domain.Session
	httpClient *http.Client
	timeout    *time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithSession makes the client read and write s instead of a fresh session.
func WithSession(s *domain.Session) Option {
	return func(c *Client) {
		if s != nil {
			c.session = s
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each round trip. Zero means no timeout.
// It applies to a copy of the HTTP client, whatever the option order.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = &d
	}
}

// WithLogger sets the logger used for per-request records.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a new API client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		session: &domain.Session{},
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout != nil {
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the service root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Session returns the session the client authenticates with.
func (c *Client) Session() *domain.Session {
	return c.session
}

// Register creates an account. The user still has to log in afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	if _, err := c.Request(ctx, "/auth/register", http.MethodPost, req, false); err != nil {
		return fmt.Errorf("client.Register: %w", err)
	}
	return nil
}

// Login exchanges credentials for a token and stores it, with the user, in
// the session. The form field "username" carries the email.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out domain.LoginResponse
	if err := c.call(ctx, http.MethodPost, "/auth/login", form, true, &out); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	if out.Token == "" {
		return nil, fmt.Errorf("client.Login: %w", ErrNoToken)
	}
	c.session.Set(out.Token, out.User)
	return &out, nil
}

// Logout ends the session server-side, then clears it locally.
// A failed logout leaves the session as it was.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.Request(ctx, "/auth/logout", http.MethodPost, nil, false); err != nil {
		return fmt.Errorf("client.Logout: %w", err)
	}
	c.session.Clear()
	return nil
}

// ListTopics returns all topics in server order.
func (c *Client) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	var list domain.TopicList
	if err := c.call(ctx, http.MethodGet, "/topics", nil, false, &list); err != nil {
		return nil, fmt.Errorf("client.ListTopics: %w", err)
	}
	return list.Topics, nil
}

// CreateTopic creates a topic.
func (c *Client) CreateTopic(ctx context.Context, req CreateTopicRequest) error {
	if _, err := c.Request(ctx, "/topics", http.MethodPost, req, false); err != nil {
		return fmt.Errorf("client.CreateTopic: %w", err)
	}
	return nil
}

// ListComments returns the comments of a topic.
func (c *Client) ListComments(ctx context.Context, topicID int64) ([]domain.Comment, error) {
	var list domain.CommentList
	if err := c.call(ctx, http.MethodGet, commentsPath(topicID), nil, false, &list); err != nil {
		return nil, fmt.Errorf("client.ListComments: %w", err)
	}
	return list.Comments, nil
}

// PostComment adds a comment to a topic.
func (c *Client) PostComment(ctx context.Context, topicID int64, content string) error {
	if _, err := c.Request(ctx, commentsPath(topicID), http.MethodPost, map[string]string{"content": content}, false); err != nil {
		return fmt.Errorf("client.PostComment: %w", err)
	}
	return nil
}

func commentsPath(topicID int64) string {
	return fmt.Sprintf("/topics/%d/comments", topicID)
}

// Request performs one round trip and returns the parsed JSON body of a 2xx
// response. An empty method means GET.
//
// When formEncoded is false, body is marshalled to JSON. When true, body is
// sent as-is and must already be encoded: url.Values, string or []byte.
//
// Non-2xx responses return *APIError, network failures *TransportError and
// malformed JSON *DecodeError. An empty body is only valid on 204 and 205;
// elsewhere it is a *DecodeError wrapping ErrEmptyBody. Request reads the
// session token but never changes it.
func (c *Client) Request(ctx context.Context, endpoint, method string, body any, formEncoded bool) (json.RawMessage, error) {
	resp, err := c.roundTrip(ctx, endpoint, method, body, formEncoded)
	if err != nil {
		return nil, err
	}
	return resp.body, nil
}

type response struct {
	status int
	body   json.RawMessage
}

// call is Request plus decoding of the success body into out.
func (c *Client) call(ctx context.Context, method, endpoint string, body any, formEncoded bool, out any) error {
	resp, err := c.roundTrip(ctx, endpoint, method, body, formEncoded)
	if err != nil {
		return err
	}
	if out == nil || resp.body == nil {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return &DecodeError{StatusCode: resp.status, Snippet: snippet(resp.body), Err: err}
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, endpoint, method string, body any, formEncoded bool) (*response, error) {
	if method == "" {
		method = http.MethodGet
	}
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	reqBody, err := encodeBody(body, formEncoded)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(endpoint), reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if formEncoded {
		req.Header.Set("Content-Type", contentTypeForm)
	} else {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	req.Header.Set("Accept", contentTypeJSON)
	requestID := logger.NewRequestID()
	req.Header.Set("X-Request-ID", requestID)
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := logger.NewRequestLogger(c.logger, requestID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("api request failed", "method", method, "endpoint", endpoint, "error", err)
		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Warn("api response read failed", "method", method, "endpoint", endpoint, "status", resp.StatusCode, "error", err)
		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}
	log.Debug("api request", "method", method, "endpoint", endpoint, "status", resp.StatusCode, "duration", time.Since(start))

	parsed, err := parseJSON(data)
	if err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Snippet: snippet(data), Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, parsed)
	}
	if parsed == nil && !allowsEmptyBody(resp.StatusCode) {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Err: ErrEmptyBody}
	}
	return &response{status: resp.StatusCode, body: parsed}, nil
}

func (c *Client) url(endpoint string) string {
	if endpoint == "" {
		return c.baseURL
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}

func encodeBody(body any, formEncoded bool) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	if formEncoded {
		switch b := body.(type) {
		case url.Values:
			return strings.NewReader(b.Encode()), nil
		case string:
			return strings.NewReader(b), nil
		case []byte:
			return bytes.NewReader(b), nil
		default:
			return nil, fmt.Errorf("%w, got %T", ErrFormBody, body)
		}
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}
	return bytes.NewReader(data), nil
}

func allowsEmptyBody(status int) bool {
	return status == http.StatusNoContent || status == http.StatusResetContent
}

// parseJSON validates data. An empty body parses to nil; roundTrip decides
// whether that is acceptable for the status.
func parseJSON(data []byte) (json.RawMessage, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func snippet(data []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(data))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
