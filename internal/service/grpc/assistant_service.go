package grpcsvc

import (
	"context"
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/anovainvest/allocations/internal/domain"
	"github.com/anovainvest/allocations/internal/service/annotations"
	"github.com/anovainvest/allocations/internal/service/cep"
	"github.com/anovainvest/allocations/internal/service/genai"
	allocationsv1 "github.com/anovainvest/allocations/proto/allocations/v1"
)

// DocumentAssistant — операции AI-ассистента, нужные транспорту.
type DocumentAssistant interface {
	AnalyzeDocument(ctx context.Context, data []byte, mimeType string) (genai.PersonalData, error)
	AnalyzeAddressDocument(ctx context.Context, data []byte, mimeType string) (genai.AddressData, error)
	TranscribeAudio(ctx context.Context, data []byte, mimeType string) (string, error)
	RecommendAssets(ctx context.Context, prompt string) (genai.CopilotResponse, error)
}

// CEPResolver ищет адрес по бразильскому почтовому индексу.
type CEPResolver interface {
	Lookup(ctx context.Context, cepCode string) (cep.Address, error)
}

// AssistantService реализует вспомогательный gRPC API: AI-ассистент,
// поиск адреса по CEP и заметки ассессора по клиентам.
type AssistantService struct {
	allocationsv1.UnimplementedAssistantServiceServer

	assistant DocumentAssistant
	resolver  CEPResolver
	notes     *annotations.Autosaver
	logger    *log.Entry
}

// NewAssistantService конструирует сервис. assistant может быть nil,
// если AI не сконфигурирован: его операции вернут FailedPrecondition.
func NewAssistantService(
	assistant DocumentAssistant,
	resolver CEPResolver,
	notes *annotations.Autosaver,
	logger *log.Entry,
) *AssistantService {
	if logger == nil {
		logger = log.New().WithField("component", "assistant-service")
	}
	return &AssistantService{
		assistant: assistant,
		resolver:  resolver,
		notes:     notes,
		logger:    logger,
	}
}

// AnalyzeDocument извлекает персональные данные из документа идентификации.
func (s *AssistantService) AnalyzeDocument(ctx context.Context, req *allocationsv1.AnalyzeDocumentRequest) (*allocationsv1.AnalyzeDocumentResponse, error) {
	if err := validateDocumentInput(req.GetData(), req.GetMimeType()); err != nil {
		return nil, err
	}
	if s.assistant == nil {
		return nil, errAssistantUnavailable
	}

	data, err := s.assistant.AnalyzeDocument(ctx, req.Data, req.MimeType)
	if err != nil {
		return nil, s.aiError("AnalyzeDocument", err)
	}

	return &allocationsv1.AnalyzeDocumentResponse{
		PersonalData: &allocationsv1.PersonalData{
			FullName:    data.FullName,
			Cpf:         data.CPF,
			BirthDate:   data.BirthDate,
			Rg:          data.RG,
			IssuingBody: data.IssuingBody,
			IssueDate:   data.IssueDate,
			MotherName:  data.MotherName,
			FatherName:  data.FatherName,
		},
	}, nil
}

// AnalyzeAddressDocument извлекает адрес из comprovante de endereço.
func (s *AssistantService) AnalyzeAddressDocument(ctx context.Context, req *allocationsv1.AnalyzeAddressDocumentRequest) (*allocationsv1.AnalyzeAddressDocumentResponse, error) {
	if err := validateDocumentInput(req.GetData(), req.GetMimeType()); err != nil {
		return nil, err
	}
	if s.assistant == nil {
		return nil, errAssistantUnavailable
	}

	data, err := s.assistant.AnalyzeAddressDocument(ctx, req.Data, req.MimeType)
	if err != nil {
		return nil, s.aiError("AnalyzeAddressDocument", err)
	}

	return &allocationsv1.AnalyzeAddressDocumentResponse{
		Address: &allocationsv1.AddressData{
			Cep:          data.CEP,
			Street:       data.Street,
			Neighborhood: data.Neighborhood,
			City:         data.City,
			State:        data.State,
		},
	}, nil
}

// TranscribeAudio транскрибирует аудиозаметку об инвестиционных целях клиента.
func (s *AssistantService) TranscribeAudio(ctx context.Context, req *allocationsv1.TranscribeAudioRequest) (*allocationsv1.TranscribeAudioResponse, error) {
	if err := validateDocumentInput(req.GetData(), req.GetMimeType()); err != nil {
		return nil, err
	}
	if s.assistant == nil {
		return nil, errAssistantUnavailable
	}

	text, err := s.assistant.TranscribeAudio(ctx, req.Data, req.MimeType)
	if err != nil {
		return nil, s.aiError("TranscribeAudio", err)
	}

	return &allocationsv1.TranscribeAudioResponse{Text: text}, nil
}

// RecommendAssets запрашивает у copilot анализ и список рекомендуемых активов.
func (s *AssistantService) RecommendAssets(ctx context.Context, req *allocationsv1.RecommendAssetsRequest) (*allocationsv1.RecommendAssetsResponse, error) {
	if strings.TrimSpace(req.GetPrompt()) == "" {
		return nil, status.Error(codes.InvalidArgument, "prompt is required")
	}
	if s.assistant == nil {
		return nil, errAssistantUnavailable
	}

	result, err := s.assistant.RecommendAssets(ctx, req.Prompt)
	if err != nil {
		return nil, s.aiError("RecommendAssets", err)
	}

	return &allocationsv1.RecommendAssetsResponse{
		Analysis:            result.Analysis,
		RecommendedAssetIds: result.RecommendedAssetIDs,
	}, nil
}

// LookupCep возвращает адрес по CEP через ViaCEP.
func (s *AssistantService) LookupCep(ctx context.Context, req *allocationsv1.LookupCepRequest) (*allocationsv1.LookupCepResponse, error) {
	if req.GetCep() == "" {
		return nil, status.Error(codes.InvalidArgument, "cep is required")
	}
	if s.resolver == nil {
		return nil, status.Error(codes.FailedPrecondition, "cep lookup is not configured")
	}

	address, err := s.resolver.Lookup(ctx, req.Cep)
	if err != nil {
		switch {
		case errors.Is(err, cep.ErrInvalidCEP):
			return nil, status.Error(codes.InvalidArgument, cep.ErrInvalidCEP.Error())
		case errors.Is(err, cep.ErrCEPNotFound):
			return nil, status.Error(codes.NotFound, cep.ErrCEPNotFound.Error())
		default:
			s.logger.WithError(err).WithField("operation", "LookupCep").Warn("cep lookup failed")
			return nil, status.Error(codes.Unavailable, "cep lookup failed")
		}
	}

	return &allocationsv1.LookupCepResponse{
		Address: &allocationsv1.AddressData{
			Cep:          address.CEP,
			Street:       address.Street,
			Neighborhood: address.Neighborhood,
			City:         address.City,
			State:        address.State,
		},
	}, nil
}

// SaveAnnotation сохраняет заметку по клиенту: черновик буферизуется до
// ближайшего autosave, финальная версия пишется сразу и черновик отбрасывается.
func (s *AssistantService) SaveAnnotation(_ context.Context, req *allocationsv1.SaveAnnotationRequest) (*allocationsv1.SaveAnnotationResponse, error) {
	if req.GetAccount() == "" {
		return nil, status.Error(codes.InvalidArgument, "account is required")
	}
	if s.notes == nil {
		return nil, status.Error(codes.FailedPrecondition, "annotations are not configured")
	}

	if req.Final {
		if err := s.notes.Commit(req.Account, req.Text); err != nil {
			s.logger.WithError(err).WithField("account", req.Account).Error("failed to save annotation")
			return nil, status.Error(codes.Internal, "failed to save annotation")
		}
	} else {
		s.notes.Set(req.Account, req.Text)
	}

	return &allocationsv1.SaveAnnotationResponse{PendingDrafts: int32(s.notes.Pending())}, nil
}

// GetAnnotation возвращает актуальный текст заметки клиента.
func (s *AssistantService) GetAnnotation(_ context.Context, req *allocationsv1.GetAnnotationRequest) (*allocationsv1.GetAnnotationResponse, error) {
	if req.GetAccount() == "" {
		return nil, status.Error(codes.InvalidArgument, "account is required")
	}
	if s.notes == nil {
		return nil, status.Error(codes.FailedPrecondition, "annotations are not configured")
	}

	text, err := s.notes.Load(req.Account)
	if err != nil {
		if errors.Is(err, domain.ErrAnnotationNotFound) {
			return nil, status.Error(codes.NotFound, domain.ErrAnnotationNotFound.Error())
		}
		s.logger.WithError(err).WithField("account", req.Account).Error("failed to load annotation")
		return nil, status.Error(codes.Internal, "failed to load annotation")
	}

	return &allocationsv1.GetAnnotationResponse{Text: text}, nil
}

var errAssistantUnavailable = status.Error(codes.FailedPrecondition, "ai assistant is not configured")

func validateDocumentInput(data []byte, mimeType string) error {
	if len(data) == 0 {
		return status.Error(codes.InvalidArgument, "document data is required")
	}
	if mimeType == "" {
		return status.Error(codes.InvalidArgument, "mime_type is required")
	}
	return nil
}

// aiError переводит ошибки AI-коллаборатора в gRPC-статусы. Устаревший
// ответ — это отменённый контекст оператора, а не сбой сервиса.
func (s *AssistantService) aiError(operation string, err error) error {
	s.logger.WithError(err).WithField("operation", operation).Warn("ai request failed")

	switch {
	case errors.Is(err, genai.ErrStaleResponse):
		return status.Error(codes.Aborted, genai.ErrStaleResponse.Error())
	case errors.Is(err, genai.ErrEmptyAIResponse):
		return status.Error(codes.Internal, genai.ErrEmptyAIResponse.Error())
	case errors.Is(err, genai.ErrMalformedAIResponse):
		return status.Error(codes.Internal, genai.ErrMalformedAIResponse.Error())
	default:
		return status.Error(codes.Unavailable, "ai request failed")
	}
}
