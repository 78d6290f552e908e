package genai

import (
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	text    string
	err     error
	onCall  func()
	model   string
	callCnt int
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, _ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.callCnt++
	f.model = model
	if f.onCall != nil {
		f.onCall()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: f.text}},
				},
			},
		},
	}, nil
}

func newTestClient(generator *fakeGenerator) *Client {
	return &Client{
		generator: generator,
		logger:    log.WithField("component", "genai-client-test"),
	}
}

func TestAnalyzeDocument_ParsesPersonalData(t *testing.T) {
	generator := &fakeGenerator{text: `{
		"nomeCompleto": "Marcelo Vitor Goncalves",
		"cpf": "123.456.789-00",
		"dataNascimento": "01/02/1985",
		"rg": "12.345.678-9",
		"orgaoEmissor": "SSP-SP",
		"dataExpedicao": "10/03/2015",
		"nomeMae": "Helena Goncalves",
		"nomePai": "José Goncalves"
	}`}
	client := newTestClient(generator)

	data, err := client.AnalyzeDocument(context.Background(), []byte("fake-image"), "image/png")
	if err != nil {
		t.Fatalf("AnalyzeDocument: %v", err)
	}
	if data.FullName != "Marcelo Vitor Goncalves" {
		t.Fatalf("unexpected name: %q", data.FullName)
	}
	if data.CPF != "123.456.789-00" {
		t.Fatalf("unexpected cpf: %q", data.CPF)
	}
	if generator.model != modelFlash {
		t.Fatalf("expected model %s, got %s", modelFlash, generator.model)
	}
}

func TestAnalyzeAddressDocument_ParsesAddress(t *testing.T) {
	generator := &fakeGenerator{text: `{
		"cep": "01310-100",
		"endereco": "Avenida Paulista, 1000",
		"bairro": "Bela Vista",
		"cidade": "São Paulo",
		"estado": "SP"
	}`}
	client := newTestClient(generator)

	data, err := client.AnalyzeAddressDocument(context.Background(), []byte("fake-pdf"), "application/pdf")
	if err != nil {
		t.Fatalf("AnalyzeAddressDocument: %v", err)
	}
	if data.City != "São Paulo" || data.State != "SP" {
		t.Fatalf("unexpected address: %+v", data)
	}
}

func TestTranscribeAudio_TrimsText(t *testing.T) {
	generator := &fakeGenerator{text: "  Cliente busca renda passiva com baixo risco.  "}
	client := newTestClient(generator)

	text, err := client.TranscribeAudio(context.Background(), []byte("fake-audio"), "audio/mp3")
	if err != nil {
		t.Fatalf("TranscribeAudio: %v", err)
	}
	if text != "Cliente busca renda passiva com baixo risco." {
		t.Fatalf("unexpected transcription: %q", text)
	}
}

func TestRecommendAssets_UsesProModel(t *testing.T) {
	generator := &fakeGenerator{text: `{
		"analysis": "Priorize títulos pré-fixados de longo prazo.",
		"recommendedAssetIds": ["CDB001", "CRA001"]
	}`}
	client := newTestClient(generator)

	resp, err := client.RecommendAssets(context.Background(), "Cliente conservador com 100 mil para alocar.")
	if err != nil {
		t.Fatalf("RecommendAssets: %v", err)
	}
	if len(resp.RecommendedAssetIDs) != 2 || resp.RecommendedAssetIDs[0] != "CDB001" {
		t.Fatalf("unexpected recommendations: %+v", resp.RecommendedAssetIDs)
	}
	if generator.model != modelPro {
		t.Fatalf("expected model %s, got %s", modelPro, generator.model)
	}
}

func TestGenerate_EmptyResponse(t *testing.T) {
	client := newTestClient(&fakeGenerator{text: "   "})

	_, err := client.TranscribeAudio(context.Background(), []byte("x"), "audio/mp3")
	if !errors.Is(err, ErrEmptyAIResponse) {
		t.Fatalf("expected ErrEmptyAIResponse, got %v", err)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	client := newTestClient(&fakeGenerator{text: "{not valid json"})

	_, err := client.RecommendAssets(context.Background(), "prompt")
	if !errors.Is(err, ErrMalformedAIResponse) {
		t.Fatalf("expected ErrMalformedAIResponse, got %v", err)
	}
}

func TestGenerate_DiscardsStaleResponse(t *testing.T) {
	var client *Client
	generator := &fakeGenerator{
		text: `{"analysis":"ok","recommendedAssetIds":[]}`,
		// Контекст оператора меняется, пока запрос в полёте.
		onCall: func() { client.Invalidate() },
	}
	client = newTestClient(generator)

	_, err := client.RecommendAssets(context.Background(), "prompt")
	if !errors.Is(err, ErrStaleResponse) {
		t.Fatalf("expected ErrStaleResponse, got %v", err)
	}

	// Следующий запрос в новом поколении проходит.
	generator.onCall = nil
	if _, err := client.RecommendAssets(context.Background(), "prompt"); err != nil {
		t.Fatalf("expected fresh request to succeed, got %v", err)
	}
}

func TestGenerate_PropagatesAPIError(t *testing.T) {
	apiErr := errors.New("quota exceeded")
	client := newTestClient(&fakeGenerator{err: apiErr})

	_, err := client.TranscribeAudio(context.Background(), []byte("x"), "audio/mp3")
	if !errors.Is(err, apiErr) {
		t.Fatalf("expected wrapped api error, got %v", err)
	}
}
