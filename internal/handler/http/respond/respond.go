// Package respond provides utilities for sending HTTP responses in JSON format.
// Failure is the single writer of error bodies: it maps the failure taxonomy onto
// a status and a fixed message, and logs infrastructure causes with secrets masked.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"nc-news/internal/domain/entity"
	"nc-news/internal/observability/logging"
)

// Client-facing messages. Nothing else is ever sent in an error body.
const (
	MsgBadRequest  = "Bad Request"
	MsgNotFound    = "Not Found"
	MsgNoComments  = "No Comments For This Article"
	MsgInternal    = "Internal Server Error"
	MsgTooMany     = "Too Many Requests"
	MsgUnavailable = "Service Unavailable"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Msg string `json:"msg"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// MapError returns the status and message for err.
//
//	InvalidIdentifier     -> 400 Bad Request
//	NotFound              -> 404 Not Found
//	NoCommentsForArticle  -> 404 No Comments For This Article
//	RouteNotFound         -> 404 Not Found
//	anything else         -> 500 Internal Server Error
func MapError(err error) (int, string) {
	switch entity.KindOf(err) {
	case entity.KindInvalidIdentifier:
		return http.StatusBadRequest, MsgBadRequest
	case entity.KindNotFound, entity.KindRouteNotFound:
		return http.StatusNotFound, MsgNotFound
	case entity.KindNoCommentsForArticle:
		return http.StatusNotFound, MsgNoComments
	default:
		return http.StatusInternalServerError, MsgInternal
	}
}

// Failure writes the error response for err. Infrastructure failures are logged
// with the request ID; their cause never reaches the client.
func Failure(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	code, msg := MapError(err)
	if code >= http.StatusInternalServerError {
		logging.WithRequestID(r.Context(), logging.FromContext(r.Context())).Error("internal server error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("code", code),
			slog.String("error", SanitizeError(err)))
	}
	JSON(w, code, ErrorBody{Msg: msg})
}

// Message writes an error body with an explicit status, for failures raised by
// middleware rather than resolvers (rate limiting, readiness).
func Message(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Msg: msg})
}
