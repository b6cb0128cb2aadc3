package model

import "fmt"

// FileSummary is the projection of a single Drive file returned to callers:
// display name, modification instant, and a dereferenceable view link.
// ModifiedTime keeps the provider's RFC 3339 string verbatim; no timezone
// normalization happens anywhere in the pipeline.
type FileSummary struct {
	Name         string
	ModifiedTime string
	WebViewLink  string
}

// Validate returns an error when any of the three projected fields is empty.
// A provider record missing a field is a malformed upstream response, never
// a summary with silent defaults.
func (f FileSummary) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("file summary missing name")
	}
	if f.ModifiedTime == "" {
		return fmt.Errorf("file summary missing modifiedTime")
	}
	if f.WebViewLink == "" {
		return fmt.Errorf("file summary missing webViewLink")
	}
	return nil
}
