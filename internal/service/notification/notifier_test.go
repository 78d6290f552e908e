package notification

import (
	"testing"

	"github.com/anovainvest/allocations/internal/domain"
)

func TestLogNotifier_ShowKeepsHistory(t *testing.T) {
	notifier := NewLogNotifier(10)

	notifier.Show("Ordem criada com sucesso!", domain.NotificationSuccess)
	notifier.Show("Falha ao processar documento.", domain.NotificationError)

	history := notifier.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(history))
	}
	if history[0].Kind != domain.NotificationSuccess {
		t.Fatalf("expected success first, got %s", history[0].Kind)
	}
	if history[1].Message != "Falha ao processar documento." {
		t.Fatalf("unexpected message: %q", history[1].Message)
	}
}

func TestLogNotifier_HistoryBounded(t *testing.T) {
	notifier := NewLogNotifier(3)

	for i := 0; i < 5; i++ {
		notifier.Show("mensagem", domain.NotificationSuccess)
	}

	if got := len(notifier.History()); got != 3 {
		t.Fatalf("expected history capped at 3, got %d", got)
	}
}

func TestLogNotifier_HistoryIsCopy(t *testing.T) {
	notifier := NewLogNotifier(10)
	notifier.Show("original", domain.NotificationSuccess)

	history := notifier.History()
	history[0].Message = "tampered"

	if notifier.History()[0].Message != "original" {
		t.Fatal("history must return an independent copy")
	}
}
