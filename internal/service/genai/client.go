// Package genai — AI-коллаборатор на Gemini: извлечение данных из документов,
// транскрибация аудио и рекомендации активов для copilot.
package genai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const (
	modelFlash = "gemini-2.5-flash"
	modelPro   = "gemini-2.5-pro"

	// Бюджет размышлений для copilot-запросов.
	copilotThinkingBudget = 32768
)

var (
	// ErrEmptyAIResponse — модель вернула пустой ответ.
	ErrEmptyAIResponse = errors.New("ai returned an empty response")
	// ErrMalformedAIResponse — ответ модели не разбирается как ожидаемый JSON.
	ErrMalformedAIResponse = errors.New("ai response is not valid json")
	// ErrStaleResponse — за время запроса контекст сменился, ответ отброшен.
	ErrStaleResponse = errors.New("ai response is stale and was discarded")
)

// PersonalData — данные, извлечённые из документа идентификации (RG/CNH).
type PersonalData struct {
	FullName    string `json:"nomeCompleto"`
	CPF         string `json:"cpf"`
	BirthDate   string `json:"dataNascimento"`
	RG          string `json:"rg"`
	IssuingBody string `json:"orgaoEmissor"`
	IssueDate   string `json:"dataExpedicao"`
	MotherName  string `json:"nomeMae"`
	FatherName  string `json:"nomePai"`
}

// AddressData — адрес, извлечённый из подтверждения адреса клиента.
type AddressData struct {
	CEP          string `json:"cep"`
	Street       string `json:"endereco"`
	Neighborhood string `json:"bairro"`
	City         string `json:"cidade"`
	State        string `json:"estado"`
}

// CopilotResponse — ответ ассистента рекомендаций активов.
type CopilotResponse struct {
	Analysis            string   `json:"analysis"`
	RecommendedAssetIDs []string `json:"recommendedAssetIds"`
}

// contentGenerator абстрагирует вызов модели (для подмены в тестах).
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client — обёртка над Gemini с защитой от устаревших ответов: каждая смена
// контекста оператора инкрементирует поколение, и ответы запросов, начатых
// в прежнем поколении, отбрасываются.
type Client struct {
	generator  contentGenerator
	logger     *log.Entry
	generation atomic.Int64
}

// NewClient создаёт клиента Gemini с API-ключом.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	sdk, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{
		generator: sdk.Models,
		logger:    log.WithField("component", "genai-client"),
	}, nil
}

// Invalidate помечает все in-flight запросы как устаревшие. Вызывается при
// смене ордера или клиента в работе.
func (c *Client) Invalidate() {
	c.generation.Add(1)
}

// AnalyzeDocument извлекает персональные данные из документа идентификации.
func (c *Client) AnalyzeDocument(ctx context.Context, data []byte, mimeType string) (PersonalData, error) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"nomeCompleto":   {Type: genai.TypeString},
			"cpf":            {Type: genai.TypeString},
			"dataNascimento": {Type: genai.TypeString},
			"rg":             {Type: genai.TypeString},
			"orgaoEmissor":   {Type: genai.TypeString},
			"dataExpedicao":  {Type: genai.TypeString},
			"nomeMae":        {Type: genai.TypeString},
			"nomePai":        {Type: genai.TypeString},
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText("Extraia as seguintes informações deste documento de identificação (RG ou CNH). Formate a resposta como JSON usando o schema fornecido."),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	var result PersonalData
	if err := c.generateJSON(ctx, modelFlash, contents, config, &result); err != nil {
		return PersonalData{}, err
	}
	return result, nil
}

// AnalyzeAddressDocument извлекает адрес из comprovante de endereço.
func (c *Client) AnalyzeAddressDocument(ctx context.Context, data []byte, mimeType string) (AddressData, error) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"cep":      {Type: genai.TypeString},
			"endereco": {Type: genai.TypeString},
			"bairro":   {Type: genai.TypeString},
			"cidade":   {Type: genai.TypeString},
			"estado":   {Type: genai.TypeString},
		},
		Required: []string{"cep", "endereco", "bairro", "cidade", "estado"},
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText("Extraia as seguintes informações deste comprovante de endereço. Formate a resposta como JSON usando o schema fornecido."),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	var result AddressData
	if err := c.generateJSON(ctx, modelFlash, contents, config, &result); err != nil {
		return AddressData{}, err
	}
	return result, nil
}

// TranscribeAudio транскрибирует аудиозапись с заметками об инвестиционных
// целях клиента.
func (c *Client) TranscribeAudio(ctx context.Context, data []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText("Transcreva esta gravação de áudio com precisão. O áudio contém notas sobre os objetivos de investimento de um cliente."),
			genai.NewPartFromBytes(data, mimeType),
		}, genai.RoleUser),
	}

	text, err := c.generateText(ctx, modelFlash, contents, nil)
	if err != nil {
		return "", err
	}
	return text, nil
}

// RecommendAssets запрашивает у copilot анализ и список рекомендуемых активов.
func (c *Client) RecommendAssets(ctx context.Context, userPrompt string) (CopilotResponse, error) {
	systemInstruction := "Você é um assistente de investimentos da Anova. Sua análise de mercado atual é que o ciclo de alta de juros nos mercados globais está próximo do fim. Portanto, você deve priorizar a recomendação de títulos de renda fixa pré-fixados de longo prazo, pois eles tendem a se valorizar nesse cenário. Para perfis de risco mais agressivos, você pode sugerir uma alocação minoritária em ações de setores resilientes, como utilities e consumo básico. Sempre responda com uma breve análise da sua sugestão, seguida por um JSON estritamente no formato do schema fornecido."

	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"analysis": {
				Type:        genai.TypeString,
				Description: "Sua breve análise sobre a recomendação de ativos.",
			},
			"recommendedAssetIds": {
				Type:        genai.TypeArray,
				Description: "Uma lista de IDs de ativos recomendados.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"analysis", "recommendedAssetIds"},
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(userPrompt),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(systemInstruction),
		}, genai.RoleUser),
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(copilotThinkingBudget)),
		},
	}

	var result CopilotResponse
	if err := c.generateJSON(ctx, modelPro, contents, config, &result); err != nil {
		return CopilotResponse{}, err
	}
	return result, nil
}

// generateText выполняет запрос и возвращает текст ответа, отбрасывая
// устаревшие ответы по счётчику поколений.
func (c *Client) generateText(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	startedAt := c.generation.Load()

	resp, err := c.generator.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if c.generation.Load() != startedAt {
		c.logger.WithField("model", model).Debug("discarding stale ai response")
		return "", ErrStaleResponse
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyAIResponse
	}
	return text, nil
}

func (c *Client) generateJSON(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig, out any) error {
	text, err := c.generateText(ctx, model, contents, config)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		c.logger.WithError(err).Debug("failed to parse ai json response")
		return fmt.Errorf("%w: %v", ErrMalformedAIResponse, err)
	}
	return nil
}
