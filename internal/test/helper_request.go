package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github/walletpanel/go-wallet-panel/internal/api"
	"github/walletpanel/go-wallet-panel/internal/util"
)

// GenericPayload is a JSON request body assembled inline in tests.
type GenericPayload map[string]any

func (g GenericPayload) Reader(t *testing.T) *bytes.Reader {
	t.Helper()

	b, err := json.Marshal(g)
	require.NoError(t, err)

	return bytes.NewReader(b)
}

// PerformRequest runs a request against the server's echo instance and
// returns the recorded response. A non-nil body is sent as JSON.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body GenericPayload, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyReader = body.Reader(t)
	}

	req := httptest.NewRequest(method, path, bodyReader)

	if headers != nil {
		req.Header = headers
	}

	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

// ParseResponseBody unmarshals the recorded JSON response into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(res.Body.Bytes(), v))
}

// ParseResponseAndValidate additionally runs the payload's own
// validation if it implements util.Validatable.
func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, v any) {
	t.Helper()

	ParseResponseBody(t, res, v)

	if validatable, ok := v.(util.Validatable); ok {
		require.NoError(t, validatable.Validate())
	}
}

// HeadersWithLanguage builds a header set carrying an Accept-Language.
func HeadersWithLanguage(lang string) http.Header {
	headers := http.Header{}
	headers.Set("Accept-Language", lang)

	return headers
}
