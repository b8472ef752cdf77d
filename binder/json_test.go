package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoseJunior1001/API-Validacao-Dados/binder"
)

type bindTarget struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func jsonRequest(t *testing.T, body, contentType string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	bind := binder.BindJSON()

	t.Run("decodes a valid body", func(t *testing.T) {
		var target bindTarget
		req := jsonRequest(t, `{"type":"cpf","value":"11144477735"}`, "application/json")

		require.NoError(t, bind(req, &target))
		assert.Equal(t, "cpf", target.Type)
		assert.Equal(t, "11144477735", target.Value)
	})

	t.Run("allows media type parameters", func(t *testing.T) {
		var target bindTarget
		req := jsonRequest(t, `{"type":"cep","value":"01310100"}`, "application/json; charset=utf-8")

		assert.NoError(t, bind(req, &target))
	})

	t.Run("rejects a missing content type", func(t *testing.T) {
		var target bindTarget
		err := bind(jsonRequest(t, `{}`, ""), &target)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("rejects non-JSON content types", func(t *testing.T) {
		var target bindTarget
		err := bind(jsonRequest(t, `{}`, "text/plain"), &target)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("rejects an empty body", func(t *testing.T) {
		var target bindTarget
		err := bind(jsonRequest(t, "", "application/json"), &target)
		require.ErrorIs(t, err, binder.ErrInvalidJSON)
		assert.Contains(t, err.Error(), "empty body")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		for _, body := range []string{`{`, `{"type":}`, `not json`} {
			var target bindTarget
			err := bind(jsonRequest(t, body, "application/json"), &target)
			assert.ErrorIs(t, err, binder.ErrInvalidJSON, "body should be rejected: %q", body)
		}
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		var target bindTarget
		err := bind(jsonRequest(t, `{"type":"cpf","surprise":true}`, "application/json"), &target)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		var target bindTarget
		err := bind(jsonRequest(t, `{"type":"cpf"}{"type":"cep"}`, "application/json"), &target)
		require.ErrorIs(t, err, binder.ErrInvalidJSON)
		assert.Contains(t, err.Error(), "after JSON document")
	})

	t.Run("rejects a type mismatch", func(t *testing.T) {
		var target bindTarget
		err := bind(jsonRequest(t, `{"type":123}`, "application/json"), &target)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})
}
