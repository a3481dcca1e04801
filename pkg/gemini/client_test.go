package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meetmate/pkg/gemini"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"role": "model", "parts": [{"text": "generated reply"}]}}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "hello"}}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resp.Text(); got != "generated reply" {
			t.Errorf("expected %q, got %q", "generated reply", got)
		}
	})

	t.Run("API error propagates", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		})
		if err == nil {
			t.Fatal("expected error for 500 response, got nil")
		}
		if !strings.Contains(err.Error(), "500") {
			t.Errorf("expected status code in error, got: %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GenerateContent(ctx, gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "hello"}}},
			},
		})
		if err == nil {
			t.Fatal("expected error for cancelled context, got nil")
		}
	})
}

func TestGenerateResponse_Text(t *testing.T) {
	empty := &gemini.GenerateResponse{}
	if got := empty.Text(); got != "" {
		t.Errorf("expected empty text for empty response, got %q", got)
	}
}
