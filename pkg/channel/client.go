// Package channel is a client for the channel API.
package channel

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/mpapenbr/acc-telemetry-bridge/pkg/transport"
)

const endpoint = "channel"

type Channel struct {
	ID   string
	Name string
}

type (
	Option func(*Client)
	Client struct {
		baseURL string
		client  *http.Client
		timeout time.Duration
	}
)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.client = c
	}
}

func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.timeout = d
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	ret := &Client{
		baseURL: baseURL,
		client:  http.DefaultClient,
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

var (
	pathItems = jp.MustParseString("$[*]")
	pathID    = jp.C("id")
	pathName  = jp.C("name")
)

// List returns the available channels
func (c *Client) List(ctx context.Context) ([]Channel, error) {
	body, err := c.do(ctx, http.MethodGet, nil, endpoint)
	if err != nil {
		return nil, err
	}
	doc, err := oj.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("invalid channel list: %w", err)
	}
	ret := []Channel{}
	for _, item := range pathItems.Get(doc) {
		ch := Channel{ID: scalar(pathID.First(item)), Name: scalar(pathName.First(item))}
		if ch.ID == "" {
			continue
		}
		ret = append(ret, ch)
	}
	return ret, nil
}

// Login verifies the password of the channel.
// A wrong password results in a *transport.ServerError.
func (c *Client) Login(ctx context.Context, id, password string) error {
	body, err := oj.Marshal(map[string]any{"password": password})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPost, body, endpoint, id, "login")
	return err
}

func (c *Client) do(ctx context.Context, method string, body []byte, path ...string) (
	[]byte, error,
) {
	u, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", c.baseURL, err)
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, &transport.TransportError{Op: "request", Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &transport.TransportError{Op: method, Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transport.TransportError{Op: "read", Err: err}
	}
	if resp.StatusCode >= 400 {
		return nil, &transport.ServerError{Status: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

func scalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
