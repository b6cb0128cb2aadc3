package driven

import (
	"context"

	"github.com/drivepeek/drivepeek/internal/domain/model"
)

// AuthClient defines the driven port for the provider's OAuth2
// authorization-code flow.
type AuthClient interface {
	// AuthCodeURL returns the provider consent page URL for the given state.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for an access token.
	Exchange(ctx context.Context, code string) (*model.AuthToken, error)
}
