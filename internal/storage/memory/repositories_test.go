package memory_test

import (
	"testing"

	"github.com/anovainvest/allocations/internal/domain"
	"github.com/anovainvest/allocations/internal/storage/memory"
)

func TestReferenceDataRepository_Lookups(t *testing.T) {
	repo := memory.NewReferenceDataRepository(memory.SeedClients(), memory.SeedAssets())

	clients := repo.ListClients()
	if len(clients) != 6 {
		t.Fatalf("expected 6 clients, got %d", len(clients))
	}
	assets := repo.ListAssets()
	if len(assets) != 7 {
		t.Fatalf("expected 7 assets, got %d", len(assets))
	}

	client, err := repo.GetClient("8574921")
	if err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if client.Name != "Marcelo Vitor Goncalves" {
		t.Fatalf("unexpected client: %s", client.Name)
	}

	if _, err := repo.GetClient("0000000"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}

	asset, err := repo.GetAsset("CDB001")
	if err != nil {
		t.Fatalf("GetAsset: %v", err)
	}
	if asset.Issuer != "Banco Master" {
		t.Fatalf("unexpected asset issuer: %s", asset.Issuer)
	}

	if _, err := repo.GetAsset("NOPE01"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestAnnotationRepository_SaveGetDelete(t *testing.T) {
	repo := memory.NewAnnotationRepository()

	if _, err := repo.Get("8574921"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found on empty repo, got %v", err)
	}

	if err := repo.Save("8574921", "Cliente prefere contato por e-mail."); err != nil {
		t.Fatalf("Save: %v", err)
	}
	text, err := repo.Get("8574921")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if text != "Cliente prefere contato por e-mail." {
		t.Fatalf("unexpected annotation: %q", text)
	}

	// Перезапись.
	if err := repo.Save("8574921", "Atualizado."); err != nil {
		t.Fatalf("Save: %v", err)
	}
	text, _ = repo.Get("8574921")
	if text != "Atualizado." {
		t.Fatalf("expected overwrite, got %q", text)
	}

	if err := repo.Delete("8574921"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get("8574921"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}

	// Удаление отсутствующей записи не ошибка.
	if err := repo.Delete("8574921"); err != nil {
		t.Fatalf("Delete of missing record: %v", err)
	}
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	repo := memory.NewOutboxRepository()

	msg, err := repo.Enqueue(domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   "ORD-001",
		EventType:     "allocation.order.created",
		Payload:       []byte(`{"order_id":"ORD-001"}`),
	})
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if msg.ID == "" {
		t.Fatal("expected generated message id")
	}

	second, err := repo.Enqueue(domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   "ORD-002",
		EventType:     "allocation.order.status_changed",
		Payload:       []byte(`{}`),
	})
	if err != nil {
		t.Fatalf("Enqueue: %v", err)
	}

	pending, err := repo.PullPending(10)
	if err != nil {
		t.Fatalf("PullPending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending messages, got %d", len(pending))
	}
	if pending[0].ID != msg.ID || pending[1].ID != second.ID {
		t.Fatal("pending messages out of enqueue order")
	}

	stats, err := repo.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.PendingCount != 2 {
		t.Fatalf("expected 2 pending, got %d", stats.PendingCount)
	}
	if stats.OldestPendingAt.IsZero() {
		t.Fatal("expected oldest pending timestamp")
	}

	if err := repo.MarkSent(msg.ID); err != nil {
		t.Fatalf("MarkSent: %v", err)
	}
	if err := repo.MarkFailed(second.ID); err != nil {
		t.Fatalf("MarkFailed: %v", err)
	}

	pending, _ = repo.PullPending(10)
	if len(pending) != 0 {
		t.Fatalf("expected empty backlog, got %d", len(pending))
	}

	if err := repo.MarkSent("missing"); err == nil {
		t.Fatal("expected error for unknown message id")
	}
}

func TestOutboxRepository_PullPendingLimit(t *testing.T) {
	repo := memory.NewOutboxRepository()
	for i := 0; i < 5; i++ {
		if _, err := repo.Enqueue(domain.OutboxMessage{
			AggregateType: "order",
			AggregateID:   "ORD-001",
			EventType:     "allocation.order.comment_added",
			Payload:       []byte(`{}`),
		}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	pending, err := repo.PullPending(3)
	if err != nil {
		t.Fatalf("PullPending: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(pending))
	}
}
