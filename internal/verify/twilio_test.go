package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*TwilioVerifier, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	v := NewTwilioVerifier("AC123", "secret", "VA456").WithBaseURL(srv.URL)
	return v, srv
}

func TestSendCode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath, gotTo, gotChannel string
		v, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, r.ParseForm())
			gotTo = r.FormValue("To")
			gotChannel = r.FormValue("Channel")

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "AC123", user)
			assert.Equal(t, "secret", pass)

			json.NewEncoder(w).Encode(map[string]string{"status": "pending"})
		})

		err := v.SendCode(context.Background(), "50685551234")
		require.NoError(t, err)
		assert.Equal(t, "/Services/VA456/Verifications", gotPath)
		assert.Equal(t, "+50685551234", gotTo)
		assert.Equal(t, "sms", gotChannel)
	})

	t.Run("provider error status", func(t *testing.T) {
		v, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		err := v.SendCode(context.Background(), "50685551234")
		assert.Error(t, err)
	})

	t.Run("empty status body", func(t *testing.T) {
		v, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{})
		})

		err := v.SendCode(context.Background(), "50685551234")
		assert.Error(t, err)
	})
}

func TestCheckCode(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		var gotPath, gotCode string
		v, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, r.ParseForm())
			gotCode = r.FormValue("Code")
			json.NewEncoder(w).Encode(map[string]string{"status": "approved"})
		})

		ok, err := v.CheckCode(context.Background(), "50685551234", "123456")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "/Services/VA456/VerificationCheck", gotPath)
		assert.Equal(t, "123456", gotCode)
	})

	t.Run("wrong code is false without error", func(t *testing.T) {
		v, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"status": "pending"})
		})

		ok, err := v.CheckCode(context.Background(), "50685551234", "000000")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("provider failure", func(t *testing.T) {
		v, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := v.CheckCode(context.Background(), "50685551234", "123456")
		assert.Error(t, err)
	})
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare number gains prefix", "50685551234", "+50685551234"},
		{"already prefixed", "+50685551234", "+50685551234"},
		{"surrounding whitespace", " 50685551234 ", "+50685551234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}
