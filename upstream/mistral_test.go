package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gotest.tools/assert"
)

func TestMistralComplete(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
		assert.NilError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"**Hi** there"}}]}`))
	}))
	defer srv.Close()

	m := NewMistral("key-1", srv.URL+"/v1", "mistral-small-latest")
	reply, err := m.Complete(context.Background(), "be nice", "hello")
	assert.NilError(t, err)
	assert.Equal(t, "**Hi** there", reply)

	assert.Equal(t, "mistral-small-latest", got.Model)
	assert.Equal(t, 0.3, got.Temperature)
	assert.Equal(t, false, got.Stream)
	assert.Equal(t, 2, len(got.Messages))
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "hello", got.Messages[1].Content)
}

func TestMistralNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	reply, err := NewMistral("key-1", srv.URL, "m").Complete(context.Background(), "", "hello")
	assert.NilError(t, err)
	assert.Equal(t, "", reply)
}

func TestMistralErrors(t *testing.T) {
	_, err := NewMistral("", "http://127.0.0.1:1", "m").Complete(context.Background(), "", "hello")
	assert.Assert(t, errors.Is(err, ErrNoAPIKey))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err = NewMistral("key-1", srv.URL, "m").Complete(context.Background(), "", "hello")
	var se *StatusError
	assert.Assert(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.Code)
}
