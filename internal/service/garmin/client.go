package garmin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spencertipping/garmin-influxdb2/internal/domain/models"
	drepo "github.com/spencertipping/garmin-influxdb2/internal/domain/repository"
	"github.com/spencertipping/garmin-influxdb2/internal/service/cache"
	xhttp "github.com/spencertipping/garmin-influxdb2/pkg/http"
	applogger "github.com/spencertipping/garmin-influxdb2/pkg/logger"
)

var ErrNotLoggedIn = errors.New("garmin: not logged in")

// Client implements WellnessSource against the Garmin Connect API.
type Client struct {
	http     *xhttp.Client
	baseURL  string
	ssoURL   string
	cache    cache.BytesCache
	cacheTTL time.Duration
	log      *applogger.Logger

	token       string
	displayName string
}

// Option configures Client.
type Option func(*Client)

// WithCache stores raw responses in c for ttl.
func WithCache(c cache.BytesCache, ttl time.Duration) Option {
	return func(cl *Client) {
		cl.cache = c
		cl.cacheTTL = ttl
	}
}

// WithLogger sets the client logger.
func WithLogger(l *applogger.Logger) Option {
	return func(cl *Client) {
		cl.log = l
	}
}

// WithHTTPClient replaces the transport client.
func WithHTTPClient(h *xhttp.Client) Option {
	return func(cl *Client) {
		cl.http = h
	}
}

// New creates a Garmin Connect client. Login must succeed before any getter.
func New(baseURL, ssoURL, userAgent string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout), xhttp.WithUserAgent(userAgent)),
		baseURL: strings.TrimRight(baseURL, "/"),
		ssoURL:  strings.TrimRight(ssoURL, "/"),
		log:     applogger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ drepo.WellnessSource = (*Client)(nil)

// HRV returns the HRV document, or nil when the day has none.
func (c *Client) HRV(ctx context.Context, date string) (models.Record, error) {
	return c.record(ctx, "hrv", date, "/hrv-service/hrv/"+date, nil)
}

func (c *Client) HeartRates(ctx context.Context, date string) (models.Record, error) {
	return c.record(ctx, "heart_rate", date,
		"/wellness-service/wellness/dailyHeartRate/"+url.PathEscape(c.displayName),
		url.Values{"date": {date}})
}

func (c *Client) Steps(ctx context.Context, date string) ([]models.Record, error) {
	body, err := c.fetch(ctx, "steps", date,
		"/wellness-service/wellness/dailySummaryChart/"+url.PathEscape(c.displayName),
		url.Values{"date": {date}})
	if err != nil || body == nil {
		return nil, err
	}
	var list []map[string]any
	if err := decode(body, &list); err != nil {
		return nil, fmt.Errorf("steps: %w", err)
	}
	out := make([]models.Record, 0, len(list))
	for _, m := range list {
		out = append(out, models.Record(m))
	}
	return out, nil
}

func (c *Client) Stress(ctx context.Context, date string) (models.Record, error) {
	return c.record(ctx, "stress", date, "/wellness-service/wellness/dailyStress/"+date, nil)
}

func (c *Client) Sleep(ctx context.Context, date string) (models.Record, error) {
	return c.record(ctx, "sleep", date,
		"/wellness-service/wellness/dailySleepData/"+url.PathEscape(c.displayName),
		url.Values{"date": {date}, "nonSleepBufferMinutes": {"60"}})
}

func (c *Client) UserSummary(ctx context.Context, date string) (models.Record, error) {
	return c.record(ctx, "user", date,
		"/usersummary-service/usersummary/daily/"+url.PathEscape(c.displayName),
		url.Values{"calendarDate": {date}})
}

func (c *Client) record(ctx context.Context, category, date, path string, query url.Values) (models.Record, error) {
	body, err := c.fetch(ctx, category, date, path, query)
	if err != nil || body == nil {
		return nil, err
	}
	var m map[string]any
	if err := decode(body, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", category, err)
	}
	return models.Record(m), nil
}

// fetch returns the raw body of one category, nil for 204 responses.
func (c *Client) fetch(ctx context.Context, category, date, path string, query url.Values) ([]byte, error) {
	if c.token == "" {
		return nil, ErrNotLoggedIn
	}

	key := category + ":" + date
	if c.cache != nil {
		b, ok, err := c.cache.GetBytes(ctx, key)
		if err != nil {
			c.log.Warn("cache read failed", applogger.String("key", key), applogger.Error(err))
		} else if ok {
			c.log.Debug("cache hit", applogger.String("key", key))
			return b, nil
		}
	}

	body, err := c.http.SendAndRead(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: query,
		Headers:     map[string]string{"Authorization": "Bearer " + c.token},
	})
	if errors.Is(err, xhttp.ErrNoContent) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", category, date, err)
	}

	if c.cache != nil {
		if err := c.cache.SetBytes(ctx, key, body, c.cacheTTL); err != nil {
			c.log.Warn("cache write failed", applogger.String("key", key), applogger.Error(err))
		}
	}
	return body, nil
}

// decode unmarshals JSON keeping numbers as json.Number.
func decode(b []byte, dest any) error {
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()
	if err := d.Decode(dest); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}
