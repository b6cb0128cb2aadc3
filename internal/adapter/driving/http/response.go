package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/drivepeek/drivepeek/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeErrorDetails writes a JSON error response carrying the underlying
// failure message. Details hold the wrapped error text, never a stack trace.
func writeErrorDetails(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// FileResponse is the JSON representation of the latest file summary.
type FileResponse struct {
	FileName     string `json:"fileName"`
	ModifiedTime string `json:"modifiedTime"`
	Link         string `json:"link"`
}

// TokenResponse is the JSON representation of an exchanged OAuth token.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Expiry       string `json:"expiry,omitempty"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// toFileResponse converts a domain FileSummary to its JSON response
// representation. All three fields are copied verbatim.
func toFileResponse(f model.FileSummary) FileResponse {
	return FileResponse{
		FileName:     f.Name,
		ModifiedTime: f.ModifiedTime,
		Link:         f.WebViewLink,
	}
}

// toTokenResponse converts a domain AuthToken to its JSON response representation.
func toTokenResponse(t model.AuthToken) TokenResponse {
	resp := TokenResponse{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
	}
	if !t.Expiry.IsZero() {
		resp.Expiry = t.Expiry.UTC().Format(time.RFC3339)
	}
	return resp
}
