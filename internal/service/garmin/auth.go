package garmin

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"

	xhttp "github.com/spencertipping/garmin-influxdb2/pkg/http"
	applogger "github.com/spencertipping/garmin-influxdb2/pkg/logger"
)

var ErrAuthFailed = errors.New("garmin: authentication failed")

var ticketRe = regexp.MustCompile(`ticket=(ST-[A-Za-z0-9\-]+)`)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type socialProfile struct {
	DisplayName string `json:"displayName"`
}

// Login signs in through SSO, exchanges the service ticket for an access
// token and resolves the profile display name used in wellness paths.
func (c *Client) Login(ctx context.Context, email, password string) error {
	page, err := c.http.SendAndRead(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     c.ssoURL + "/sso/signin",
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		QueryParams: map[string][]string{
			"service": {c.baseURL},
			"embed":   {"true"},
		},
		Body: url.Values{
			"username": {email},
			"password": {password},
			"embed":    {"true"},
			"_eventId": {"submit"},
		},
	})
	if err != nil {
		if xhttp.IsUnauthorized(err) {
			return ErrAuthFailed
		}
		return fmt.Errorf("garmin sso: %w", err)
	}
	m := ticketRe.FindSubmatch(page)
	if m == nil {
		return ErrAuthFailed
	}

	var tok tokenResponse
	if err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     c.baseURL + "/oauth-service/oauth/exchange/user/2.0",
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		Body:    url.Values{"ticket": {string(m[1])}},
	}, &tok); err != nil {
		if xhttp.IsUnauthorized(err) {
			return ErrAuthFailed
		}
		return fmt.Errorf("garmin token exchange: %w", err)
	}
	if tok.AccessToken == "" {
		return ErrAuthFailed
	}
	c.token = tok.AccessToken

	var profile socialProfile
	if err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     c.baseURL + "/userprofile-service/socialProfile",
		Headers: map[string]string{"Authorization": "Bearer " + c.token},
	}, &profile); err != nil {
		c.token = ""
		return fmt.Errorf("garmin profile: %w", err)
	}
	if profile.DisplayName == "" {
		c.token = ""
		return fmt.Errorf("garmin profile: empty display name")
	}
	c.displayName = profile.DisplayName

	c.log.Info("garmin login ok", applogger.String("display_name", c.displayName))
	return nil
}
