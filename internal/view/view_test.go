package view_test

import (
	"testing"

	"github.com/anovainvest/allocations/internal/domain"
	"github.com/anovainvest/allocations/internal/storage/memory"
	"github.com/anovainvest/allocations/internal/view"
)

func seedPointers() []*domain.Order {
	seed := memory.SeedOrders()
	orders := make([]*domain.Order, 0, len(seed))
	for i := range seed {
		orders = append(orders, &seed[i])
	}
	return orders
}

func TestFilterAndSort_NoFilterReturnsAll(t *testing.T) {
	orders := seedPointers()

	result := view.FilterAndSort(orders, view.Filter{})
	if len(result) != len(orders) {
		t.Fatalf("expected %d orders, got %d", len(orders), len(result))
	}
}

func TestFilterAndSort_FavoritesFirstThenDateDesc(t *testing.T) {
	orders := []*domain.Order{
		{ID: "ORD-010", ClientName: "A", CreatedDate: "22/10/2025 10:00", Status: domain.OrderStatusOpen},
		{ID: "ORD-011", ClientName: "B", CreatedDate: "20/10/2025 10:00", Status: domain.OrderStatusOpen, IsFavorite: true},
		{ID: "ORD-012", ClientName: "C", CreatedDate: "23/10/2025 10:00", Status: domain.OrderStatusOpen},
	}

	result := view.FilterAndSort(orders, view.Filter{})

	// Избранный старый ордер выше свежих обычных.
	want := []string{"ORD-011", "ORD-012", "ORD-010"}
	for i, id := range want {
		if result[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, result[i].ID)
		}
	}
}

func TestFilterAndSort_DayFirstDateParsing(t *testing.T) {
	// 03/02/2025 — 3 февраля; 02/03/2025 — 2 марта. При месяц-первом
	// разборе порядок был бы обратный.
	orders := []*domain.Order{
		{ID: "ORD-020", CreatedDate: "03/02/2025 09:00", Status: domain.OrderStatusOpen},
		{ID: "ORD-021", CreatedDate: "02/03/2025 09:00", Status: domain.OrderStatusOpen},
	}

	result := view.FilterAndSort(orders, view.Filter{})
	if result[0].ID != "ORD-021" {
		t.Fatalf("expected march order first, got %s", result[0].ID)
	}
}

func TestFilterAndSort_StatusFilter(t *testing.T) {
	orders := seedPointers()

	result := view.FilterAndSort(orders, view.Filter{Status: domain.OrderStatusExecuted})
	if len(result) != 1 {
		t.Fatalf("expected 1 executed order, got %d", len(result))
	}
	if result[0].ID != "ORD-001" {
		t.Fatalf("expected ORD-001, got %s", result[0].ID)
	}
}

func TestFilterAndSort_TermMatchesIDAndClientName(t *testing.T) {
	orders := seedPointers()

	byID := view.FilterAndSort(orders, view.Filter{Term: "ord-002"})
	if len(byID) != 1 || byID[0].ID != "ORD-002" {
		t.Fatalf("term by id: got %d results", len(byID))
	}

	byName := view.FilterAndSort(orders, view.Filter{Term: "beatriz"})
	if len(byName) != 1 || byName[0].ID != "ORD-006" {
		t.Fatalf("term by client name: got %d results", len(byName))
	}

	none := view.FilterAndSort(orders, view.Filter{Term: "nenhum cliente assim"})
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestFilterAndSort_StatusAndTermCombined(t *testing.T) {
	orders := seedPointers()

	result := view.FilterAndSort(orders, view.Filter{
		Status: domain.OrderStatusOpen,
		Term:   "ana",
	})
	if len(result) != 1 || result[0].ID != "ORD-002" {
		t.Fatalf("combined filter: got %d results", len(result))
	}
}

func TestFilterAndSort_StableForEqualKeys(t *testing.T) {
	// Одинаковые дата и флаг избранного: порядок входа сохраняется.
	orders := []*domain.Order{
		{ID: "ORD-030", CreatedDate: "22/10/2025 10:00", Status: domain.OrderStatusOpen},
		{ID: "ORD-031", CreatedDate: "22/10/2025 10:00", Status: domain.OrderStatusOpen},
		{ID: "ORD-032", CreatedDate: "22/10/2025 10:00", Status: domain.OrderStatusOpen},
	}

	result := view.FilterAndSort(orders, view.Filter{})
	for i, want := range []string{"ORD-030", "ORD-031", "ORD-032"} {
		if result[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, result[i].ID)
		}
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	orders := []*domain.Order{
		{ID: "ORD-040", CreatedDate: "20/10/2025 10:00", Status: domain.OrderStatusOpen},
		{ID: "ORD-041", CreatedDate: "22/10/2025 10:00", Status: domain.OrderStatusOpen},
	}

	_ = view.FilterAndSort(orders, view.Filter{})

	if orders[0].ID != "ORD-040" || orders[1].ID != "ORD-041" {
		t.Fatal("input slice reordered")
	}
}

func TestStatusCounts_CoversAllStatusesAndMatchesFilter(t *testing.T) {
	orders := seedPointers()

	counts := view.StatusCounts(orders)
	if len(counts) != 6 {
		t.Fatalf("expected 6 status keys, got %d", len(counts))
	}

	total := 0
	for _, status := range domain.AllOrderStatuses() {
		filtered := view.FilterAndSort(orders, view.Filter{Status: status})
		if counts[status] != len(filtered) {
			t.Fatalf("status %s: count %d != filtered %d", status, counts[status], len(filtered))
		}
		total += counts[status]
	}
	if total != len(orders) {
		t.Fatalf("counts sum %d != total orders %d", total, len(orders))
	}
}

func TestStatusCounts_EmptyListHasZeroKeys(t *testing.T) {
	counts := view.StatusCounts(nil)
	for _, status := range domain.AllOrderStatuses() {
		if counts[status] != 0 {
			t.Fatalf("expected zero count for %s, got %d", status, counts[status])
		}
	}
}
