package network

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/google/uuid"
)

var ErrRequestFailed = errors.New("request failed")

const (
	DefaultTimeout   = 30 * time.Second
	RequestIDHeader  = "X-Request-ID"
	defaultUserAgent = "jobboard"
)

// Options configures a Client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Rotator   *Rotator
}

// Client sends backend requests, optionally through rotating proxies.
// It is safe for concurrent use: every proxy gets its own tls client, built
// once, so a request never changes the proxy of another one in flight.
type Client struct {
	direct    tls_client.HttpClient
	byProxy   map[string]tls_client.HttpClient
	rotator   *Rotator
	userAgent string
}

func NewClient(opts Options) (*Client, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	seconds := int(timeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	c := &Client{
		rotator:   opts.Rotator,
		userAgent: userAgent,
	}

	if c.rotator == nil {
		direct, err := newHTTPClient(seconds, "")
		if err != nil {
			return nil, err
		}
		c.direct = direct
		return c, nil
	}

	c.byProxy = make(map[string]tls_client.HttpClient)
	for _, proxy := range c.rotator.Proxies() {
		client, err := newHTTPClient(seconds, proxy.String())
		if err != nil {
			return nil, fmt.Errorf("proxy %s: %w", proxy.Redacted(), err)
		}
		c.byProxy[proxy.String()] = client
	}
	return c, nil
}

func newHTTPClient(timeoutSeconds int, proxy string) (tls_client.HttpClient, error) {
	jar, _ := fhttpcookiejar.New(nil)
	options := []tls_client.HttpClientOption{
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(timeoutSeconds),
		tls_client.WithCookieJar(jar),
	}
	if proxy != "" {
		options = append(options, tls_client.WithProxyUrl(proxy))
	}
	return tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
}

// Do sends req. Requests without a request id get a fresh one.
func (c *Client) Do(req *fhttp.Request) (*fhttp.Response, error) {
	client, proxy, err := c.pick()
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	if proxy != nil {
		c.rotator.Report(proxy, resp.StatusCode)
	}
	return resp, nil
}

// pick returns the client for the next usable proxy, or the direct client
// when no rotator is configured.
func (c *Client) pick() (tls_client.HttpClient, *url.URL, error) {
	if c.rotator == nil {
		return c.direct, nil, nil
	}
	proxy, err := c.rotator.Next()
	if err != nil {
		return nil, nil, err
	}
	client, ok := c.byProxy[proxy.String()]
	if !ok {
		return nil, nil, fmt.Errorf("no client for proxy %s", proxy.Redacted())
	}
	return client, proxy, nil
}
