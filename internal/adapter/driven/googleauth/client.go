// Package googleauth implements the AuthClient port for Google's OAuth2
// authorization-code flow.
package googleauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"

	"github.com/drivepeek/drivepeek/internal/domain/model"
	"github.com/drivepeek/drivepeek/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.AuthClient = (*Client)(nil)

// Client implements the driven.AuthClient port using golang.org/x/oauth2.
type Client struct {
	cfg *oauth2.Config
}

// NewClient creates an OAuth client against Google's production endpoints.
// The requested scope is read-only Drive metadata, which is all the latest
// file lookup needs.
func NewClient(clientID, clientSecret, redirectURL string) *Client {
	return newClient(clientID, clientSecret, redirectURL, google.Endpoint)
}

// NewClientWithEndpoint creates a Client against custom authorization and
// token endpoints. This constructor is intended for testing.
func NewClientWithEndpoint(clientID, clientSecret, redirectURL string, endpoint oauth2.Endpoint) *Client {
	return newClient(clientID, clientSecret, redirectURL, endpoint)
}

func newClient(clientID, clientSecret, redirectURL string, endpoint oauth2.Endpoint) *Client {
	return &Client{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{drive.DriveMetadataReadonlyScope},
			Endpoint:     endpoint,
		},
	}
}

// AuthCodeURL returns the consent page URL for the given state. Offline
// access is requested so the caller also receives a refresh token.
func (c *Client) AuthCodeURL(state string) string {
	return c.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the authorization code for an access token.
func (c *Client) Exchange(ctx context.Context, code string) (*model.AuthToken, error) {
	tok, err := c.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	return &model.AuthToken{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}, nil
}
