package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/facecam/internal/client/models"
	"github.com/dmitrijs2005/facecam/internal/common"
	"github.com/dmitrijs2005/facecam/internal/logging"
	"github.com/google/uuid"
)

// Client is a stateless request executor. The only state it carries is the
// immutable Session it was bound to with WithSession.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
	session models.Session
	newID   func() string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithRequestIDs overrides the request id generator.
func WithRequestIDs(fn func() string) Option {
	return func(c *Client) { c.newID = fn }
}

// defaultHTTPClient never follows redirects: a 303 from the service is a
// domain answer, not a pointer elsewhere.
func defaultHTTPClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    defaultHTTPClient(),
		log:     logging.Discard(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSession returns a copy of c that authenticates as s.
func (c *Client) WithSession(s models.Session) *Client {
	cp := *c
	cp.session = s
	return &cp
}

func (c *Client) Session() models.Session {
	return c.session
}

// Do runs an authenticated operation. username and session_token in params
// are overwritten with the bound session's values.
func (c *Client) Do(ctx context.Context, op Operation, params url.Values, decode Decoder) Result {
	if !c.session.Valid() {
		return TransportFailure(common.ErrNotLoggedIn)
	}

	form := url.Values{}
	for k, v := range params {
		form[k] = append([]string(nil), v...)
	}
	form.Set(common.FieldUsername, c.session.Username)
	form.Set(common.FieldSessionToken, c.session.Token)

	return c.post(ctx, op, form, decode)
}

// Authenticate runs login or register, which take a password instead of a
// session.
func (c *Client) Authenticate(ctx context.Context, op Operation, username, password string, decode Decoder) Result {
	form := url.Values{}
	form.Set(common.FieldUsername, username)
	form.Set(common.FieldPassword, password)
	return c.post(ctx, op, form, decode)
}

func (c *Client) post(ctx context.Context, op Operation, form url.Values, decode Decoder) Result {
	requestID := c.newID()
	log := c.log.With("op", string(op), "request_id", requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+string(op), strings.NewReader(form.Encode()))
	if err != nil {
		log.Error(ctx, "build request", "error", err)
		return TransportFailure(fmt.Errorf("%w: %v", common.ErrTransport, err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return TransportFailure(fmt.Errorf("%w: %v", common.ErrTransport, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "read response", "status", resp.StatusCode, "error", err)
		return TransportFailure(fmt.Errorf("%w: read body: %v", common.ErrTransport, err))
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return DomainFailure(resp.StatusCode, decodeErrorBody(data))
	}

	if decode != nil {
		if err := decode(data); err != nil {
			log.Warn(ctx, "malformed response", "status", resp.StatusCode, "error", err)
			return TransportFailure(fmt.Errorf("%w: decode %s response: %v", common.ErrTransport, op, err))
		}
	}
	return Success(resp.StatusCode)
}

func decodeErrorBody(data []byte) *ErrorBody {
	if len(data) == 0 {
		return nil
	}
	var body ErrorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil
	}
	if body.Error == "" && body.Message == "" {
		return nil
	}
	return &body
}
