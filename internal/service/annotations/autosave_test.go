package annotations

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/anovainvest/allocations/internal/domain"
)

type stubAnnotationRepo struct {
	mu      sync.Mutex
	saved   map[string]string
	saveErr error
}

func newStubAnnotationRepo() *stubAnnotationRepo {
	return &stubAnnotationRepo{saved: make(map[string]string)}
}

func (s *stubAnnotationRepo) Save(account, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved[account] = text
	return nil
}

func (s *stubAnnotationRepo) Get(account string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.saved[account]
	if !ok {
		return "", domain.ErrAnnotationNotFound
	}
	return text, nil
}

func (s *stubAnnotationRepo) Delete(account string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saved, account)
	return nil
}

func (s *stubAnnotationRepo) get(account string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.saved[account]
	return text, ok
}

var _ domain.AnnotationRepository = (*stubAnnotationRepo)(nil)

func TestAutosaver_FlushSavesLatestDraft(t *testing.T) {
	repo := newStubAnnotationRepo()
	autosaver := NewAutosaver(repo)

	autosaver.Set("8574921", "primeira versão")
	autosaver.Set("8574921", "segunda versão")
	autosaver.Set("10984572", "outra nota")

	if autosaver.Pending() != 2 {
		t.Fatalf("expected 2 pending drafts, got %d", autosaver.Pending())
	}

	autosaver.Flush()

	if text, _ := repo.get("8574921"); text != "segunda versão" {
		t.Fatalf("expected latest draft, got %q", text)
	}
	if text, _ := repo.get("10984572"); text != "outra nota" {
		t.Fatalf("unexpected saved draft: %q", text)
	}
	if autosaver.Pending() != 0 {
		t.Fatalf("expected empty buffer after flush, got %d", autosaver.Pending())
	}
}

func TestAutosaver_DiscardDropsDraft(t *testing.T) {
	repo := newStubAnnotationRepo()
	autosaver := NewAutosaver(repo)

	autosaver.Set("8574921", "rascunho")
	autosaver.Discard("8574921")
	autosaver.Flush()

	if _, ok := repo.get("8574921"); ok {
		t.Fatal("discarded draft must not be saved")
	}
}

func TestAutosaver_CommitPersistsAndDiscardsDraft(t *testing.T) {
	repo := newStubAnnotationRepo()
	autosaver := NewAutosaver(repo)

	autosaver.Set("8574921", "rascunho antigo")

	if err := autosaver.Commit("8574921", "versão final"); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if text, _ := repo.get("8574921"); text != "versão final" {
		t.Fatalf("expected committed text, got %q", text)
	}
	if autosaver.Pending() != 0 {
		t.Fatalf("expected draft discarded after commit, pending=%d", autosaver.Pending())
	}

	// Flush после commit не перезатирает финальную версию.
	autosaver.Flush()
	if text, _ := repo.get("8574921"); text != "versão final" {
		t.Fatalf("flush overwrote committed text: %q", text)
	}
}

func TestAutosaver_CommitFailureKeepsDraft(t *testing.T) {
	repo := newStubAnnotationRepo()
	repo.saveErr = errors.New("storage down")
	autosaver := NewAutosaver(repo)

	autosaver.Set("8574921", "rascunho")

	if err := autosaver.Commit("8574921", "versão final"); err == nil {
		t.Fatal("expected commit error")
	}
	if autosaver.Pending() != 1 {
		t.Fatalf("draft must survive a failed commit, pending=%d", autosaver.Pending())
	}
}

func TestAutosaver_LoadPrefersDraft(t *testing.T) {
	repo := newStubAnnotationRepo()
	repo.saved["8574921"] = "versão salva"
	autosaver := NewAutosaver(repo)

	text, err := autosaver.Load("8574921")
	if err != nil || text != "versão salva" {
		t.Fatalf("expected stored text, got %q (%v)", text, err)
	}

	autosaver.Set("8574921", "rascunho mais novo")
	text, err = autosaver.Load("8574921")
	if err != nil || text != "rascunho mais novo" {
		t.Fatalf("expected draft to win, got %q (%v)", text, err)
	}

	if _, err := autosaver.Load("0000000"); !errors.Is(err, domain.ErrAnnotationNotFound) {
		t.Fatalf("expected ErrAnnotationNotFound, got %v", err)
	}
}

func TestAutosaver_FailedSaveKeepsDraft(t *testing.T) {
	repo := newStubAnnotationRepo()
	repo.saveErr = errors.New("storage down")
	autosaver := NewAutosaver(repo)

	autosaver.Set("8574921", "nota importante")
	autosaver.Flush()

	if autosaver.Pending() != 1 {
		t.Fatalf("expected draft retained after failed save, pending=%d", autosaver.Pending())
	}

	// Хранилище ожило: повторный flush сохраняет.
	repo.saveErr = nil
	autosaver.Flush()

	if text, _ := repo.get("8574921"); text != "nota importante" {
		t.Fatalf("expected draft saved on retry, got %q", text)
	}
}

func TestAutosaver_RunFlushesOnCancel(t *testing.T) {
	repo := newStubAnnotationRepo()
	autosaver := NewAutosaver(repo, WithFlushInterval(time.Hour))

	autosaver.Set("8574921", "nota final")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		autosaver.Run(ctx)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("autosaver did not stop on context cancel")
	}

	if text, _ := repo.get("8574921"); text != "nota final" {
		t.Fatalf("expected final flush on shutdown, got %q", text)
	}
}

func TestAutosaver_RunPeriodicFlush(t *testing.T) {
	repo := newStubAnnotationRepo()
	autosaver := NewAutosaver(repo, WithFlushInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		autosaver.Run(ctx)
	}()

	autosaver.Set("10984572", "salva periodicamente")

	deadline := time.After(time.Second)
	for {
		if text, ok := repo.get("10984572"); ok && text == "salva periodicamente" {
			break
		}
		select {
		case <-deadline:
			t.Fatal("draft was not flushed periodically")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	<-done
}
