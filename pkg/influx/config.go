package influx

import "time"

// ClientOption configures Client.
type ClientOption func(*ClientConfig)

// ClientConfig holds InfluxDB 2 connection settings.
type ClientConfig struct {
	Server  string
	Token   string
	Org     string
	Bucket  string
	Timeout time.Duration
	Ping    bool
}

// WithServer sets the server URL, e.g. http://myinfluxdb:8086.
func WithServer(server string) ClientOption {
	return func(c *ClientConfig) {
		c.Server = server
	}
}

// WithToken sets the API token.
func WithToken(token string) ClientOption {
	return func(c *ClientConfig) {
		c.Token = token
	}
}

// WithTarget sets the organization and bucket writes go to.
func WithTarget(org, bucket string) ClientOption {
	return func(c *ClientConfig) {
		c.Org = org
		c.Bucket = bucket
	}
}

// WithTimeout sets the HTTP request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *ClientConfig) {
		c.Timeout = d
	}
}

// WithPing toggles the reachability check in NewClient.
func WithPing(ping bool) ClientOption {
	return func(c *ClientConfig) {
		c.Ping = ping
	}
}
