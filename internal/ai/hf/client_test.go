package hf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "test-model", 5*time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.baseAPIURL = srv.URL + "/"
	return client
}

func TestGenerateArrayShape(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", got)
		}
		w.Write([]byte(`[{"generated_text":"the answer"}]`))
	})

	answer, err := client.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if answer != "the answer" {
		t.Fatalf("unexpected answer: %q", answer)
	}
}

func TestGenerateObjectShape(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generated_text":"the answer"}`))
	})

	answer, err := client.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if answer != "the answer" {
		t.Fatalf("unexpected answer: %q", answer)
	}
}

func TestGenerateErrorShape(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"error":"model is loading"}]`))
	})

	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected error for error-shaped response")
	}
}

func TestGenerateUnknownShapeFallsBack(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	})

	answer, err := client.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if answer != fallbackAnswer {
		t.Fatalf("expected fallback answer, got %q", answer)
	}
}

func TestGenerateNonSuccessStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestGenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"generated_text":"late"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "test-model", 20*time.Millisecond)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	client.baseAPIURL = srv.URL + "/"

	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestNewClientRequiresConfig(t *testing.T) {
	if _, err := NewClient("", "model", 0); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := NewClient("key", "", 0); err == nil {
		t.Fatal("expected error for missing model")
	}
}
