package allocationsv1

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeClientConn struct {
	invoke func(context.Context, string, any, any, ...grpc.CallOption) error
}

func (f *fakeClientConn) Invoke(ctx context.Context, method string, args any, reply any, opts ...grpc.CallOption) error {
	if f.invoke == nil {
		return errors.New("unexpected Invoke call")
	}
	return f.invoke(ctx, method, args, reply, opts...)
}

func (f *fakeClientConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("not implemented")
}

type grpcTestAllocationService struct {
	UnimplementedAllocationServiceServer
}

func (s *grpcTestAllocationService) CreateOrder(_ context.Context, req *CreateOrderRequest) (*CreateOrderResponse, error) {
	return &CreateOrderResponse{Order: &Order{Id: "ORD-001", Account: req.GetAccount()}}, nil
}

func (s *grpcTestAllocationService) GetOrder(_ context.Context, req *GetOrderRequest) (*GetOrderResponse, error) {
	return &GetOrderResponse{Order: &Order{Id: req.GetOrderId()}}, nil
}

func (s *grpcTestAllocationService) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return &ListOrdersResponse{Orders: []*Order{{Id: "ORD-001"}}}, nil
}

func (s *grpcTestAllocationService) UpdateOrderStatus(_ context.Context, req *UpdateOrderStatusRequest) (*UpdateOrderStatusResponse, error) {
	return &UpdateOrderStatusResponse{Order: &Order{Id: req.GetOrderId(), Status: req.GetStatus()}}, nil
}

func (s *grpcTestAllocationService) AddComment(_ context.Context, req *AddCommentRequest) (*AddCommentResponse, error) {
	return &AddCommentResponse{Order: &Order{Id: req.GetOrderId()}}, nil
}

func (s *grpcTestAllocationService) AttachFile(_ context.Context, req *AttachFileRequest) (*AttachFileResponse, error) {
	return &AttachFileResponse{Order: &Order{Id: req.GetOrderId()}}, nil
}

func (s *grpcTestAllocationService) ToggleFavorite(_ context.Context, req *ToggleFavoriteRequest) (*ToggleFavoriteResponse, error) {
	return &ToggleFavoriteResponse{Order: &Order{Id: req.GetOrderId(), IsFavorite: true}}, nil
}

func (s *grpcTestAllocationService) GetStatusCounts(context.Context, *GetStatusCountsRequest) (*GetStatusCountsResponse, error) {
	return &GetStatusCountsResponse{Counts: []*StatusCount{{Status: OrderStatus_ORDER_STATUS_OPEN, Count: 1}}}, nil
}

func (s *grpcTestAllocationService) ListClients(context.Context, *ListClientsRequest) (*ListClientsResponse, error) {
	return &ListClientsResponse{Clients: []*Client{{Account: "8574921"}}}, nil
}

func (s *grpcTestAllocationService) ListAssets(context.Context, *ListAssetsRequest) (*ListAssetsResponse, error) {
	return &ListAssetsResponse{Assets: []*Asset{{Id: "CDB001"}}}, nil
}

type grpcTestAssistantService struct {
	UnimplementedAssistantServiceServer
}

func (s *grpcTestAssistantService) AnalyzeDocument(context.Context, *AnalyzeDocumentRequest) (*AnalyzeDocumentResponse, error) {
	return &AnalyzeDocumentResponse{PersonalData: &PersonalData{FullName: "Maria Oliveira"}}, nil
}

func (s *grpcTestAssistantService) AnalyzeAddressDocument(context.Context, *AnalyzeAddressDocumentRequest) (*AnalyzeAddressDocumentResponse, error) {
	return &AnalyzeAddressDocumentResponse{Address: &AddressData{Cep: "01310-100"}}, nil
}

func (s *grpcTestAssistantService) TranscribeAudio(context.Context, *TranscribeAudioRequest) (*TranscribeAudioResponse, error) {
	return &TranscribeAudioResponse{Text: "transcrição"}, nil
}

func (s *grpcTestAssistantService) RecommendAssets(context.Context, *RecommendAssetsRequest) (*RecommendAssetsResponse, error) {
	return &RecommendAssetsResponse{Analysis: "análise"}, nil
}

func (s *grpcTestAssistantService) LookupCep(_ context.Context, req *LookupCepRequest) (*LookupCepResponse, error) {
	return &LookupCepResponse{Address: &AddressData{Cep: req.GetCep()}}, nil
}

func (s *grpcTestAssistantService) SaveAnnotation(_ context.Context, req *SaveAnnotationRequest) (*SaveAnnotationResponse, error) {
	return &SaveAnnotationResponse{PendingDrafts: 1}, nil
}

func (s *grpcTestAssistantService) GetAnnotation(context.Context, *GetAnnotationRequest) (*GetAnnotationResponse, error) {
	return &GetAnnotationResponse{Text: "nota"}, nil
}

func TestAllocationServiceClientMethods(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		methods := map[string]int{}
		conn := &fakeClientConn{
			invoke: func(_ context.Context, method string, _ any, reply any, _ ...grpc.CallOption) error {
				methods[method]++
				switch out := reply.(type) {
				case *CreateOrderResponse:
					out.Order = &Order{Id: "ORD-001"}
				case *GetOrderResponse:
					out.Order = &Order{Id: "ORD-001"}
				case *ListOrdersResponse:
					out.Orders = []*Order{{Id: "ORD-001"}}
				case *UpdateOrderStatusResponse:
					out.Order = &Order{Id: "ORD-001"}
				case *AddCommentResponse:
					out.Order = &Order{Id: "ORD-001"}
				case *AttachFileResponse:
					out.Order = &Order{Id: "ORD-001"}
				case *ToggleFavoriteResponse:
					out.Order = &Order{Id: "ORD-001"}
				case *GetStatusCountsResponse:
					out.Counts = []*StatusCount{{Status: OrderStatus_ORDER_STATUS_OPEN, Count: 1}}
				case *ListClientsResponse:
					out.Clients = []*Client{{Account: "8574921"}}
				case *ListAssetsResponse:
					out.Assets = []*Asset{{Id: "CDB001"}}
				default:
					t.Fatalf("unexpected reply type: %T", out)
				}
				return nil
			},
		}

		client := NewAllocationServiceClient(conn)
		ctx := context.Background()
		if _, err := client.CreateOrder(ctx, &CreateOrderRequest{}); err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}
		if _, err := client.GetOrder(ctx, &GetOrderRequest{}); err != nil {
			t.Fatalf("GetOrder failed: %v", err)
		}
		if _, err := client.ListOrders(ctx, &ListOrdersRequest{}); err != nil {
			t.Fatalf("ListOrders failed: %v", err)
		}
		if _, err := client.UpdateOrderStatus(ctx, &UpdateOrderStatusRequest{}); err != nil {
			t.Fatalf("UpdateOrderStatus failed: %v", err)
		}
		if _, err := client.AddComment(ctx, &AddCommentRequest{}); err != nil {
			t.Fatalf("AddComment failed: %v", err)
		}
		if _, err := client.AttachFile(ctx, &AttachFileRequest{}); err != nil {
			t.Fatalf("AttachFile failed: %v", err)
		}
		if _, err := client.ToggleFavorite(ctx, &ToggleFavoriteRequest{}); err != nil {
			t.Fatalf("ToggleFavorite failed: %v", err)
		}
		if _, err := client.GetStatusCounts(ctx, &GetStatusCountsRequest{}); err != nil {
			t.Fatalf("GetStatusCounts failed: %v", err)
		}
		if _, err := client.ListClients(ctx, &ListClientsRequest{}); err != nil {
			t.Fatalf("ListClients failed: %v", err)
		}
		if _, err := client.ListAssets(ctx, &ListAssetsRequest{}); err != nil {
			t.Fatalf("ListAssets failed: %v", err)
		}

		for _, method := range []string{
			AllocationService_CreateOrder_FullMethodName,
			AllocationService_GetOrder_FullMethodName,
			AllocationService_ListOrders_FullMethodName,
			AllocationService_UpdateOrderStatus_FullMethodName,
			AllocationService_AddComment_FullMethodName,
			AllocationService_AttachFile_FullMethodName,
			AllocationService_ToggleFavorite_FullMethodName,
			AllocationService_GetStatusCounts_FullMethodName,
			AllocationService_ListClients_FullMethodName,
			AllocationService_ListAssets_FullMethodName,
		} {
			if methods[method] != 1 {
				t.Fatalf("expected method %s called exactly once, got %d", method, methods[method])
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		conn := &fakeClientConn{
			invoke: func(context.Context, string, any, any, ...grpc.CallOption) error {
				return status.Error(codes.Internal, "boom")
			},
		}
		client := NewAllocationServiceClient(conn)
		ctx := context.Background()

		for name, call := range map[string]func() error{
			"CreateOrder":       func() error { _, err := client.CreateOrder(ctx, &CreateOrderRequest{}); return err },
			"GetOrder":          func() error { _, err := client.GetOrder(ctx, &GetOrderRequest{}); return err },
			"ListOrders":        func() error { _, err := client.ListOrders(ctx, &ListOrdersRequest{}); return err },
			"UpdateOrderStatus": func() error { _, err := client.UpdateOrderStatus(ctx, &UpdateOrderStatusRequest{}); return err },
			"AddComment":        func() error { _, err := client.AddComment(ctx, &AddCommentRequest{}); return err },
			"AttachFile":        func() error { _, err := client.AttachFile(ctx, &AttachFileRequest{}); return err },
			"ToggleFavorite":    func() error { _, err := client.ToggleFavorite(ctx, &ToggleFavoriteRequest{}); return err },
			"GetStatusCounts":   func() error { _, err := client.GetStatusCounts(ctx, &GetStatusCountsRequest{}); return err },
			"ListClients":       func() error { _, err := client.ListClients(ctx, &ListClientsRequest{}); return err },
			"ListAssets":        func() error { _, err := client.ListAssets(ctx, &ListAssetsRequest{}); return err },
		} {
			if err := call(); status.Code(err) != codes.Internal {
				t.Fatalf("%s expected Internal error, got %v", name, err)
			}
		}
	})
}

func TestAssistantServiceClientMethods(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		methods := map[string]int{}
		conn := &fakeClientConn{
			invoke: func(_ context.Context, method string, _ any, reply any, _ ...grpc.CallOption) error {
				methods[method]++
				switch out := reply.(type) {
				case *AnalyzeDocumentResponse:
					out.PersonalData = &PersonalData{FullName: "Maria Oliveira"}
				case *AnalyzeAddressDocumentResponse:
					out.Address = &AddressData{Cep: "01310-100"}
				case *TranscribeAudioResponse:
					out.Text = "transcrição"
				case *RecommendAssetsResponse:
					out.Analysis = "análise"
				case *LookupCepResponse:
					out.Address = &AddressData{Cep: "01310-100"}
				case *SaveAnnotationResponse:
					out.PendingDrafts = 1
				case *GetAnnotationResponse:
					out.Text = "nota"
				default:
					t.Fatalf("unexpected reply type: %T", out)
				}
				return nil
			},
		}

		client := NewAssistantServiceClient(conn)
		ctx := context.Background()
		if _, err := client.AnalyzeDocument(ctx, &AnalyzeDocumentRequest{}); err != nil {
			t.Fatalf("AnalyzeDocument failed: %v", err)
		}
		if _, err := client.AnalyzeAddressDocument(ctx, &AnalyzeAddressDocumentRequest{}); err != nil {
			t.Fatalf("AnalyzeAddressDocument failed: %v", err)
		}
		if _, err := client.TranscribeAudio(ctx, &TranscribeAudioRequest{}); err != nil {
			t.Fatalf("TranscribeAudio failed: %v", err)
		}
		if _, err := client.RecommendAssets(ctx, &RecommendAssetsRequest{}); err != nil {
			t.Fatalf("RecommendAssets failed: %v", err)
		}
		if _, err := client.LookupCep(ctx, &LookupCepRequest{}); err != nil {
			t.Fatalf("LookupCep failed: %v", err)
		}
		if _, err := client.SaveAnnotation(ctx, &SaveAnnotationRequest{}); err != nil {
			t.Fatalf("SaveAnnotation failed: %v", err)
		}
		if _, err := client.GetAnnotation(ctx, &GetAnnotationRequest{}); err != nil {
			t.Fatalf("GetAnnotation failed: %v", err)
		}

		for _, method := range []string{
			AssistantService_AnalyzeDocument_FullMethodName,
			AssistantService_AnalyzeAddressDocument_FullMethodName,
			AssistantService_TranscribeAudio_FullMethodName,
			AssistantService_RecommendAssets_FullMethodName,
			AssistantService_LookupCep_FullMethodName,
			AssistantService_SaveAnnotation_FullMethodName,
			AssistantService_GetAnnotation_FullMethodName,
		} {
			if methods[method] != 1 {
				t.Fatalf("expected method %s called exactly once, got %d", method, methods[method])
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		conn := &fakeClientConn{
			invoke: func(context.Context, string, any, any, ...grpc.CallOption) error {
				return status.Error(codes.Internal, "boom")
			},
		}
		client := NewAssistantServiceClient(conn)
		ctx := context.Background()

		for name, call := range map[string]func() error{
			"AnalyzeDocument":        func() error { _, err := client.AnalyzeDocument(ctx, &AnalyzeDocumentRequest{}); return err },
			"AnalyzeAddressDocument": func() error { _, err := client.AnalyzeAddressDocument(ctx, &AnalyzeAddressDocumentRequest{}); return err },
			"TranscribeAudio":        func() error { _, err := client.TranscribeAudio(ctx, &TranscribeAudioRequest{}); return err },
			"RecommendAssets":        func() error { _, err := client.RecommendAssets(ctx, &RecommendAssetsRequest{}); return err },
			"LookupCep":              func() error { _, err := client.LookupCep(ctx, &LookupCepRequest{}); return err },
			"SaveAnnotation":         func() error { _, err := client.SaveAnnotation(ctx, &SaveAnnotationRequest{}); return err },
			"GetAnnotation":          func() error { _, err := client.GetAnnotation(ctx, &GetAnnotationRequest{}); return err },
		} {
			if err := call(); status.Code(err) != codes.Internal {
				t.Fatalf("%s expected Internal error, got %v", name, err)
			}
		}
	})
}

func TestUnimplementedAssistantServiceServer(t *testing.T) {
	var srv UnimplementedAssistantServiceServer
	ctx := context.Background()

	for name, call := range map[string]func() error{
		"AnalyzeDocument":        func() error { _, err := srv.AnalyzeDocument(ctx, &AnalyzeDocumentRequest{}); return err },
		"AnalyzeAddressDocument": func() error { _, err := srv.AnalyzeAddressDocument(ctx, &AnalyzeAddressDocumentRequest{}); return err },
		"TranscribeAudio":        func() error { _, err := srv.TranscribeAudio(ctx, &TranscribeAudioRequest{}); return err },
		"RecommendAssets":        func() error { _, err := srv.RecommendAssets(ctx, &RecommendAssetsRequest{}); return err },
		"LookupCep":              func() error { _, err := srv.LookupCep(ctx, &LookupCepRequest{}); return err },
		"SaveAnnotation":         func() error { _, err := srv.SaveAnnotation(ctx, &SaveAnnotationRequest{}); return err },
		"GetAnnotation":          func() error { _, err := srv.GetAnnotation(ctx, &GetAnnotationRequest{}); return err },
	} {
		if err := call(); status.Code(err) != codes.Unimplemented {
			t.Fatalf("%s expected Unimplemented error, got %v", name, err)
		}
	}

	srv.mustEmbedUnimplementedAssistantServiceServer()
}

func TestUnimplementedAllocationServiceServer(t *testing.T) {
	var srv UnimplementedAllocationServiceServer
	ctx := context.Background()

	for name, call := range map[string]func() error{
		"CreateOrder":       func() error { _, err := srv.CreateOrder(ctx, &CreateOrderRequest{}); return err },
		"GetOrder":          func() error { _, err := srv.GetOrder(ctx, &GetOrderRequest{}); return err },
		"ListOrders":        func() error { _, err := srv.ListOrders(ctx, &ListOrdersRequest{}); return err },
		"UpdateOrderStatus": func() error { _, err := srv.UpdateOrderStatus(ctx, &UpdateOrderStatusRequest{}); return err },
		"AddComment":        func() error { _, err := srv.AddComment(ctx, &AddCommentRequest{}); return err },
		"AttachFile":        func() error { _, err := srv.AttachFile(ctx, &AttachFileRequest{}); return err },
		"ToggleFavorite":    func() error { _, err := srv.ToggleFavorite(ctx, &ToggleFavoriteRequest{}); return err },
		"GetStatusCounts":   func() error { _, err := srv.GetStatusCounts(ctx, &GetStatusCountsRequest{}); return err },
		"ListClients":       func() error { _, err := srv.ListClients(ctx, &ListClientsRequest{}); return err },
		"ListAssets":        func() error { _, err := srv.ListAssets(ctx, &ListAssetsRequest{}); return err },
	} {
		if err := call(); status.Code(err) != codes.Unimplemented {
			t.Fatalf("%s expected Unimplemented error, got %v", name, err)
		}
	}

	srv.mustEmbedUnimplementedAllocationServiceServer()
}

func TestRegisterAndServiceDescriptor(t *testing.T) {
	g := grpc.NewServer()
	RegisterAllocationServiceServer(g, &grpcTestAllocationService{})
	RegisterAssistantServiceServer(g, &grpcTestAssistantService{})

	if got, want := AllocationService_ServiceDesc.ServiceName, "allocations.v1.AllocationService"; got != want {
		t.Fatalf("unexpected service name: got %s want %s", got, want)
	}
	if len(AllocationService_ServiceDesc.Methods) != 10 {
		t.Fatalf("expected 10 method descriptors, got %d", len(AllocationService_ServiceDesc.Methods))
	}
	if AllocationService_ServiceDesc.Metadata == "" {
		t.Fatalf("metadata should not be empty")
	}

	if got, want := AssistantService_ServiceDesc.ServiceName, "allocations.v1.AssistantService"; got != want {
		t.Fatalf("unexpected service name: got %s want %s", got, want)
	}
	if len(AssistantService_ServiceDesc.Methods) != 7 {
		t.Fatalf("expected 7 method descriptors, got %d", len(AssistantService_ServiceDesc.Methods))
	}
}
