package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptchaService_Verify(t *testing.T) {
	t.Run("disabled gate passes without a network call", func(t *testing.T) {
		service := NewCaptchaService("")
		service.verifyURL = "http://127.0.0.1:1" // would fail if dialed

		assert.False(t, service.Enabled())

		ok, err := service.Verify(context.Background(), "")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("token forwarded to verifier", func(t *testing.T) {
		var gotSecret, gotResponse string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			gotSecret = r.FormValue("secret")
			gotResponse = r.FormValue("response")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success": true}`))
		}))
		defer ts.Close()

		service := NewCaptchaService("shh")
		service.verifyURL = ts.URL

		ok, err := service.Verify(context.Background(), "tok-123")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "shh", gotSecret)
		assert.Equal(t, "tok-123", gotResponse)
	})

	t.Run("verifier rejection", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
		}))
		defer ts.Close()

		service := NewCaptchaService("shh")
		service.verifyURL = ts.URL

		ok, err := service.Verify(context.Background(), "bad-token")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unreachable verifier is an error", func(t *testing.T) {
		service := NewCaptchaService("shh")
		service.verifyURL = "http://127.0.0.1:1"

		ok, err := service.Verify(context.Background(), "tok-123")
		assert.Error(t, err)
		assert.False(t, ok)
	})
}
