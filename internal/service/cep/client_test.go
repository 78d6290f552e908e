package cep

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookup_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/01310100/json/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "01310-100",
			"logradouro": "Avenida Paulista",
			"bairro": "Bela Vista",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	// Маска и дефис во входе игнорируются.
	address, err := client.Lookup(context.Background(), "01310-100")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if address.Street != "Avenida Paulista" {
		t.Fatalf("unexpected street: %q", address.Street)
	}
	if address.City != "São Paulo" || address.State != "SP" {
		t.Fatalf("unexpected city/state: %q / %q", address.City, address.State)
	}
}

func TestLookup_InvalidCEP(t *testing.T) {
	client := NewClient()

	for _, cep := range []string{"", "123", "123456789", "abcdefgh"} {
		if _, err := client.Lookup(context.Background(), cep); !errors.Is(err, ErrInvalidCEP) {
			t.Fatalf("cep %q: expected ErrInvalidCEP, got %v", cep, err)
		}
	}
}

func TestLookup_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	if _, err := client.Lookup(context.Background(), "99999999"); !errors.Is(err, ErrCEPNotFound) {
		t.Fatalf("expected ErrCEPNotFound, got %v", err)
	}
}

func TestLookup_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))

	if _, err := client.Lookup(context.Background(), "01310100"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}
