// Package application contains the request-scoped services that sit between
// the HTTP adapter and the driven ports.
package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/drivepeek/drivepeek/internal/domain/model"
	"github.com/drivepeek/drivepeek/internal/domain/port/driven"
)

// ErrNoPDFFound is returned when the provider reports zero matching PDFs.
// Absence is a caller-visible condition, not a system fault.
var ErrNoPDFFound = errors.New("no PDF files found")

// FileService resolves the most recently modified PDF for a request's
// credential. It is a pure request/response function over the (credential,
// upstream-state) pair; nothing is cached between invocations, so repeated
// requests always re-query the provider.
type FileService struct {
	drive driven.DriveClient
}

// NewFileService creates a FileService backed by the given Drive port.
func NewFileService(drive driven.DriveClient) *FileService {
	return &FileService{drive: drive}
}

// LatestPDF issues exactly one provider query and returns the projected
// summary. Zero matching records map to ErrNoPDFFound; the service never
// substitutes a default document or retries with relaxed filters.
func (s *FileService) LatestPDF(ctx context.Context, accessToken string) (*model.FileSummary, error) {
	summary, err := s.drive.LatestPDF(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("querying drive for latest PDF: %w", err)
	}

	if summary == nil {
		return nil, ErrNoPDFFound
	}

	if err := summary.Validate(); err != nil {
		return nil, fmt.Errorf("malformed drive record: %w", err)
	}

	return summary, nil
}
