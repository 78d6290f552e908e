package grpcsvc

import (
	"errors"
	"testing"

	"github.com/anovainvest/allocations/internal/domain"
	allocationsv1 "github.com/anovainvest/allocations/proto/allocations/v1"
)

func TestStatusMappingRoundTrip(t *testing.T) {
	for _, orderStatus := range domain.AllOrderStatuses() {
		protoStatus := toProtoStatus(orderStatus)
		if protoStatus == allocationsv1.OrderStatus_ORDER_STATUS_UNSPECIFIED {
			t.Fatalf("status %q mapped to UNSPECIFIED", orderStatus)
		}
		if got := fromProtoStatus(protoStatus); got != orderStatus {
			t.Fatalf("round trip mismatch: %q -> %v -> %q", orderStatus, protoStatus, got)
		}
	}
}

func TestFromProtoStatusUnknown(t *testing.T) {
	if got := fromProtoStatus(allocationsv1.OrderStatus_ORDER_STATUS_UNSPECIFIED); got != "" {
		t.Fatalf("expected empty status for UNSPECIFIED, got %q", got)
	}
	if got := fromProtoStatus(allocationsv1.OrderStatus(999)); got != "" {
		t.Fatalf("expected empty status for unknown enum, got %q", got)
	}
}

func TestToProtoOrderKeepsTimeline(t *testing.T) {
	order := domain.Order{
		ID:            "ORD-001",
		Account:       "8574921",
		ClientName:    "Maria Oliveira",
		Status:        domain.OrderStatusExecuted,
		TotalCentavos: 5000000,
		Assets: []domain.AssetAllocation{
			{AssetID: "CDB001", AmountCentavos: 5000000},
		},
		IsFavorite:  true,
		CreatedDate: "20/10/2025 10:30",
		Timeline: []domain.TimelineEvent{
			{Seq: 1, Kind: domain.EventKindLog, Author: "Sistema", Timestamp: "20/10/2025 10:30", Content: "Ordem criada por Ana Costa."},
			{Seq: 2, Kind: domain.EventKindFile, Author: "Ana Costa", Timestamp: "20/10/2025 11:00", FileName: "contrato.pdf"},
		},
	}

	proto := toProtoOrder(order)
	if proto.Id != order.ID || proto.ClientName != order.ClientName {
		t.Fatalf("unexpected identity fields: %+v", proto)
	}
	if proto.Status != allocationsv1.OrderStatus_ORDER_STATUS_EXECUTED {
		t.Fatalf("unexpected status: %v", proto.Status)
	}
	if !proto.IsFavorite {
		t.Fatal("expected favorite flag to survive mapping")
	}
	if len(proto.Timeline) != 2 {
		t.Fatalf("expected 2 timeline events, got %d", len(proto.Timeline))
	}
	if proto.Timeline[0].Seq != 1 || proto.Timeline[0].Kind != string(domain.EventKindLog) {
		t.Fatalf("unexpected first event: %+v", proto.Timeline[0])
	}
	if proto.Timeline[1].FileName != "contrato.pdf" {
		t.Fatalf("unexpected file event: %+v", proto.Timeline[1])
	}
	if len(proto.Assets) != 1 || proto.Assets[0].AmountCentavos != 5000000 {
		t.Fatalf("unexpected assets: %+v", proto.Assets)
	}
}

func TestJoinErrors(t *testing.T) {
	got := joinErrors([]error{errors.New("first"), errors.New("second")})
	if got != "first; second" {
		t.Fatalf("unexpected joined message: %q", got)
	}
}
