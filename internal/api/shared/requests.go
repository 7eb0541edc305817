package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
)

// MaxRequestBodyBytes caps request bodies accepted by DecodeJSON and form posts.
const MaxRequestBodyBytes = 1 << 20

// ErrUnsupportedMediaType is returned for bodies that are neither form posts nor JSON.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// IsJSONRequest reports whether the request body is declared as JSON.
func IsJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// ParseForm parses a form post, rejecting bodies of any other media type.
// Requests without a Content-Type are parsed as forms.
func ParseForm(w http.ResponseWriter, r *http.Request) error {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, ct)
		}
	}
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("invalid form body: %w", err)
	}
	return nil
}
