package driven

import (
	"context"

	"github.com/drivepeek/drivepeek/internal/domain/model"
)

// DriveClient defines the driven port for querying the remote file-storage
// provider. Implementations issue exactly one outbound call per invocation
// and hold no state between calls.
type DriveClient interface {
	// LatestPDF returns the most recently modified PDF visible to the given
	// access token. Returns (nil, nil) when no PDF matches. Any transport,
	// authorization, or malformed-response failure is returned as an error.
	LatestPDF(ctx context.Context, accessToken string) (*model.FileSummary, error)
}
