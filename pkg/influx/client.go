package influx

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Client wraps a blocking InfluxDB 2 write API bound to one org and bucket.
type Client struct {
	client influxdb2.Client
	write  api.WriteAPIBlocking
	org    string
	bucket string
}

// NewClient creates the client and, unless disabled, checks the server is
// reachable.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &ClientConfig{
		Timeout: 20 * time.Second,
		Ping:    true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Server == "" {
		return nil, fmt.Errorf("server is required")
	}
	if cfg.Org == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("org and bucket are required")
	}

	options := influxdb2.DefaultOptions().
		SetHTTPRequestTimeout(uint(cfg.Timeout / time.Second))
	client := influxdb2.NewClientWithOptions(cfg.Server, cfg.Token, options)

	if cfg.Ping {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		ok, err := client.Ping(ctx)
		if err != nil || !ok {
			client.Close()
			if err == nil {
				err = fmt.Errorf("server not ready")
			}
			return nil, fmt.Errorf("influx ping: %w", err)
		}
	}

	return &Client{
		client: client,
		write:  client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		org:    cfg.Org,
		bucket: cfg.Bucket,
	}, nil
}

// WritePoint writes points synchronously.
func (c *Client) WritePoint(ctx context.Context, points ...*write.Point) error {
	if len(points) == 0 {
		return nil
	}
	if err := c.write.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("influx write %s/%s: %w", c.org, c.bucket, err)
	}
	return nil
}

// Close releases the HTTP client.
func (c *Client) Close() error {
	c.client.Close()
	return nil
}
