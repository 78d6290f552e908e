// Package cep запрашивает адрес по бразильскому почтовому индексу (CEP)
// в публичном API ViaCEP.
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://viacep.com.br"

var (
	// ErrInvalidCEP — CEP не состоит из восьми цифр.
	ErrInvalidCEP = errors.New("cep must contain exactly 8 digits")
	// ErrCEPNotFound — ViaCEP не знает такого CEP.
	ErrCEPNotFound = errors.New("cep not found")
)

// Address — адрес, возвращаемый ViaCEP.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

// Client — HTTP-клиент ViaCEP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Entry
}

// Option настраивает Client.
type Option func(*Client)

// WithBaseURL подменяет адрес API (для тестов).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient подменяет http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient создаёт клиента ViaCEP.
func NewClient(options ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log.WithField("component", "viacep-client"),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Lookup возвращает адрес по CEP. Нецифровые символы во входе игнорируются.
func (c *Client) Lookup(ctx context.Context, cep string) (Address, error) {
	digits := onlyDigits(cep)
	if len(digits) != 8 {
		return Address{}, ErrInvalidCEP
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Address{}, fmt.Errorf("build viacep request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("viacep request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	// ViaCEP отвечает 200 с {"erro": true} для неизвестного CEP.
	var payload struct {
		Address
		Erro bool `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Address{}, fmt.Errorf("decode viacep response: %w", err)
	}
	if payload.Erro {
		return Address{}, ErrCEPNotFound
	}

	c.logger.WithField("cep", digits).Debug("cep resolved")
	return payload.Address, nil
}

func onlyDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
