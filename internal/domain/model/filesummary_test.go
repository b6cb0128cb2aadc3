package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileSummaryValidate(t *testing.T) {
	valid := FileSummary{
		Name:         "report.pdf",
		ModifiedTime: "2024-03-14T12:00:00.000Z",
		WebViewLink:  "https://drive.google.com/file/d/abc123/view",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(*FileSummary)
		wantMsg string
	}{
		{"empty name", func(f *FileSummary) { f.Name = "" }, "name"},
		{"empty modifiedTime", func(f *FileSummary) { f.ModifiedTime = "" }, "modifiedTime"},
		{"empty webViewLink", func(f *FileSummary) { f.WebViewLink = "" }, "webViewLink"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := f.Validate()
			assert.ErrorContains(t, err, tt.wantMsg)
		})
	}
}
