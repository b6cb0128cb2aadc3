package httphandler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/drivepeek/drivepeek/internal/application"
	"github.com/drivepeek/drivepeek/internal/domain/port/driven"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	files  *application.FileService
	auth   driven.AuthClient
	logger *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(files *application.FileService, auth driven.AuthClient, logger *slog.Logger) *Handler {
	return &Handler{
		files:  files,
		auth:   auth,
		logger: logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with logging and recovery middleware. The latest-file route additionally
// passes through the bearer-token gate.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /files/latest", requireToken(http.HandlerFunc(h.LatestFile)))
	mux.HandleFunc("GET /auth/google", h.AuthRedirect)
	mux.HandleFunc("GET /auth/google/callback", h.AuthCallback)
	mux.HandleFunc("GET /health", h.Health)

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)

	return wrapped
}

// LatestFile returns the most recently modified PDF visible to the request's
// bearer token.
func (h *Handler) LatestFile(w http.ResponseWriter, r *http.Request) {
	token := tokenFromContext(r.Context())

	// A client disconnect must not cancel the in-flight Drive call; the
	// single outbound request is bounded by the provider's own timeout.
	ctx := context.WithoutCancel(r.Context())

	summary, err := h.files.LatestPDF(ctx, token)
	if errors.Is(err, application.ErrNoPDFFound) {
		writeError(w, http.StatusNotFound, "No PDF files found")
		return
	}
	if err != nil {
		h.logger.Error("failed to fetch latest file", "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to fetch file", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toFileResponse(*summary))
}

// AuthRedirect sends the caller to Google's consent page.
func (h *Handler) AuthRedirect(w http.ResponseWriter, r *http.Request) {
	state, err := randomState()
	if err != nil {
		h.logger.Error("failed to generate oauth state", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to start authorization")
		return
	}

	http.Redirect(w, r, h.auth.AuthCodeURL(state), http.StatusFound)
}

// AuthCallback exchanges the authorization code for a token and returns the
// token to the caller. Nothing is persisted; the service holds no session
// store, so the state parameter round-trips unverified and the exchange is
// gated by the client secret alone.
func (h *Handler) AuthCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "Authorization code is required")
		return
	}

	tok, err := h.auth.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("authorization code exchange failed", "error", err)
		writeErrorDetails(w, http.StatusInternalServerError, "Failed to exchange authorization code", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toTokenResponse(*tok))
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// randomState returns a hex-encoded 16-byte random state value.
func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
