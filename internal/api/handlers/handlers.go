package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/obiajulu/fintrack-be/internal/apperror"
	"github.com/obiajulu/fintrack-be/internal/auth"
)

// decodeBody decodes a JSON request body into a map for schema validation.
// A missing body decodes to an empty object; malformed JSON is a
// validation failure.
func decodeBody(r *http.Request) (map[string]any, error) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, apperror.Validation(map[string][]string{"body": {"must be valid JSON"}})
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}

// identity returns the verified caller placed in the context by the auth
// middleware.
func identity(r *http.Request) (auth.Identity, error) {
	id, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		return auth.Identity{}, apperror.Unauthorized("Missing or invalid Authorization header")
	}
	return id, nil
}
