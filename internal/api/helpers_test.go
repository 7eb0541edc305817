package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/foldertasks/internal/api/shared"
	"github.com/phrazzld/foldertasks/internal/view"
	"github.com/stretchr/testify/require"
)

// fixedNow is the clock of the test form decoder.
var fixedNow = time.Date(2024, 1, 5, 15, 30, 0, 0, time.UTC)

func newTestRenderer(t *testing.T) view.Renderer {
	t.Helper()
	renderer, err := view.NewTemplateRenderer()
	require.NoError(t, err)
	return renderer
}

func newTestForms() *FormDecoder {
	return NewFormDecoder(func() time.Time { return fixedNow })
}

// serve sends a request as userID through handler. A nil userID sends it
// unauthenticated; nil form sends no body.
func serve(handler http.Handler, method, target string, userID uuid.UUID, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != uuid.Nil {
		req = req.WithContext(shared.WithUserID(req.Context(), userID))
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}
