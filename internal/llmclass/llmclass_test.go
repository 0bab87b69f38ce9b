// SPDX-License-Identifier: Apache-2.0

package llmclass

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsenseproj/formsense-mcp/internal/match"
)

func generateServer(t *testing.T, completion string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Prompt)
		assert.Positive(t, req.MaxNewTokens)

		json.NewEncoder(w).Encode(generateResponse{Response: completion})
	}))
}

func fieldEmail() match.FieldContext {
	return match.NewFieldContext(match.FieldInfo{Label: "Work e-mail", InputType: "email"})
}

func TestClient_Classify(t *testing.T) {
	srv := generateServer(t, "email")
	defer srv.Close()

	c := New(WithEndpoint(srv.URL))
	res, err := c.Classify(context.Background(), fieldEmail())
	require.NoError(t, err)
	assert.Equal(t, "email", res.Key)
	assert.Equal(t, completionConfidence, res.Confidence)
}

func TestClient_ClassifyChattyCompletion(t *testing.T) {
	srv := generateServer(t, "The attribute is firstName.")
	defer srv.Close()

	c := New(WithEndpoint(srv.URL))
	res, err := c.Classify(context.Background(), fieldEmail())
	require.NoError(t, err)
	assert.Equal(t, "firstName", res.Key)
}

func TestClient_ClassifyDecline(t *testing.T) {
	srv := generateServer(t, "none")
	defer srv.Close()

	c := New(WithEndpoint(srv.URL))
	res, err := c.Classify(context.Background(), fieldEmail())
	require.NoError(t, err)
	assert.Empty(t, res.Key)
}

func TestClient_ClassifyGarbageCompletion(t *testing.T) {
	srv := generateServer(t, "I cannot help with that request at all, sorry about it")
	defer srv.Close()

	c := New(WithEndpoint(srv.URL))
	_, err := c.Classify(context.Background(), fieldEmail())
	assert.Error(t, err)
}

func TestClient_ClassifyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(WithEndpoint(srv.URL))
	_, err := c.Classify(context.Background(), fieldEmail())
	assert.Error(t, err)
}

func TestClient_ClassifyHonorsDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		json.NewEncoder(w).Encode(generateResponse{Response: "email"})
	}))
	defer srv.Close()
	defer close(release)

	c := New(WithEndpoint(srv.URL))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Classify(ctx, fieldEmail())
	assert.Error(t, err)
}

func TestParseCompletion(t *testing.T) {
	tests := []struct {
		in      string
		wantKey string
		wantOK  bool
	}{
		{"email", "email", true},
		{"  Email.\n", "email", true},
		{`"gradYear"`, "gradYear", true},
		{"birthday-day", "birthDay", true},
		{"answer: phone number", "phone", true},
		{"none", "", true},
		{"", "", false},
		{"quux", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, ok := parseCompletion(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
