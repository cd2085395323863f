package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const (
	loginPath    = "login"
	registerPath = "register"
	healthPath   = "health"

	RegisterFieldUsername = "username"
	RegisterFieldEmail    = "email"

	DefaultTimeout = 10 * time.Second

	maxBodySize = 1 << 20
)

type Options struct {
	BaseURL string
	Timeout time.Duration
	// RegisterField names the JSON key that carries the identifier on
	// registration: "username" (default) or "email".
	RegisterField string
}

type HTTPClient struct {
	baseURL       string
	registerField string
	http          *http.Client
	oauth         *oauth2.Config
}

func NewHTTPClient(opts Options) (*HTTPClient, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid auth service url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid auth service url %q", opts.BaseURL)
	}

	field := opts.RegisterField
	switch field {
	case "":
		field = RegisterFieldUsername
	case RegisterFieldUsername, RegisterFieldEmail:
	default:
		return nil, fmt.Errorf("unsupported register field %q", field)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	tokenURL, err := url.JoinPath(opts.BaseURL, loginPath)
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		baseURL:       opts.BaseURL,
		registerField: field,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &requestIDTransport{base: http.DefaultTransport.(*http.Transport).Clone()},
		},
		oauth: &oauth2.Config{
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, identifier, secret string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)

	tok, err := c.oauth.PasswordCredentialsToken(ctx, identifier, secret)
	if err != nil {
		return "", c.mapError(err)
	}

	return tok.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, identifier, secret string) error {
	body, err := json.Marshal(map[string]string{
		c.registerField: identifier,
		"password":      secret,
	})
	if err != nil {
		return &AuthError{Kind: ErrUnexpectedFailure, Err: err}
	}

	endpoint, err := url.JoinPath(c.baseURL, registerPath)
	if err != nil {
		return &AuthError{Kind: ErrUnexpectedFailure, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &AuthError{Kind: ErrUnexpectedFailure, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	return statusError(resp.StatusCode, respBody)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	endpoint, err := url.JoinPath(c.baseURL, healthPath)
	if err != nil {
		return &AuthError{Kind: ErrNetworkUnavailable, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &AuthError{Kind: ErrNetworkUnavailable, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &AuthError{Kind: ErrNetworkUnavailable, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &AuthError{Kind: ErrNetworkUnavailable, StatusCode: resp.StatusCode}
	}
	return nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) {
		code := 0
		if rErr.Response != nil {
			code = rErr.Response.StatusCode
		}
		ae := statusError(code, rErr.Body)
		ae.Err = err
		return ae
	}

	var (
		uErr   *url.Error
		netErr net.Error
	)
	if errors.As(err, &uErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &AuthError{Kind: ErrNetworkUnavailable, Err: err}
	}

	return &AuthError{Kind: ErrUnexpectedFailure, Err: err}
}
