// Package googledrive implements the DriveClient port using the official
// Google Drive v3 API client.
package googledrive

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/drivepeek/drivepeek/internal/domain/model"
	"github.com/drivepeek/drivepeek/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DriveClient = (*Client)(nil)

// Fixed query shape. These four parameters are the entire query language of
// the service: no caller-supplied filter, sort override, or pagination cursor
// exists, and ordering is delegated to Drive's own sort.
const (
	pdfQuery    = "mimeType = 'application/pdf'"
	sortNewest  = "modifiedTime desc"
	fileFields  = "files(id, name, modifiedTime, webViewLink)"
	maxPageSize = 1
)

// Client implements the driven.DriveClient port. It holds no credential: each
// call builds a fresh Drive service parameterized with that request's token,
// so no handle is ever shared across credentials.
type Client struct {
	endpoint string // Overrides the Drive API base URL; set only by tests.
}

// NewClient creates a Drive client that talks to the production API.
func NewClient() *Client {
	return &Client{}
}

// NewClientWithEndpoint creates a Client that sends requests to the given
// base URL. This constructor is intended for testing, allowing injection of
// an httptest server.
func NewClientWithEndpoint(endpoint string) *Client {
	return &Client{endpoint: endpoint}
}

// LatestPDF issues one files.list query filtered to PDFs, sorted newest
// first, capped at a single record, and projects it into a FileSummary.
// Returns (nil, nil) when the account has no matching PDF. A returned record
// missing name, modifiedTime, or webViewLink is a malformed upstream
// response and is reported as an error.
func (c *Client) LatestPDF(ctx context.Context, accessToken string) (*model.FileSummary, error) {
	svc, err := c.newService(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	list, err := svc.Files.List().
		Q(pdfQuery).
		OrderBy(sortNewest).
		PageSize(maxPageSize).
		Fields(fileFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("listing drive files: %w", err)
	}

	if len(list.Files) == 0 {
		return nil, nil
	}

	f := list.Files[0]
	summary := &model.FileSummary{
		Name:         f.Name,
		ModifiedTime: f.ModifiedTime,
		WebViewLink:  f.WebViewLink,
	}
	if err := summary.Validate(); err != nil {
		return nil, fmt.Errorf("malformed drive response: %w", err)
	}

	return summary, nil
}

// newService builds a Drive service authenticated with the request's token.
func (c *Client) newService(ctx context.Context, accessToken string) (*drive.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})

	opts := []option.ClientOption{option.WithTokenSource(ts)}
	if c.endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.endpoint))
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating drive service: %w", err)
	}
	return svc, nil
}
