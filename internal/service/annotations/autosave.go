// Package annotations управляет заметками ассессора по клиентам: черновики
// в памяти и периодический autosave в репозиторий.
package annotations

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/anovainvest/allocations/internal/domain"
)

const defaultFlushInterval = 3 * time.Second

// Autosaver буферизует правки заметок и периодически сбрасывает их
// в репозиторий. Черновики ключуются по счёту клиента; сохраняется
// только последняя версия текста.
type Autosaver struct {
	repo     domain.AnnotationRepository
	logger   *log.Entry
	interval time.Duration

	mu     sync.Mutex
	drafts map[string]string
}

// Option настраивает Autosaver.
type Option func(*Autosaver)

// WithLogger задаёт logger.
func WithLogger(logger *log.Entry) Option {
	return func(a *Autosaver) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithFlushInterval задаёт период autosave.
func WithFlushInterval(interval time.Duration) Option {
	return func(a *Autosaver) {
		if interval > 0 {
			a.interval = interval
		}
	}
}

// NewAutosaver создаёт autosaver поверх репозитория заметок.
func NewAutosaver(repo domain.AnnotationRepository, options ...Option) *Autosaver {
	a := &Autosaver{
		repo:     repo,
		logger:   log.WithField("component", "annotations-autosaver"),
		interval: defaultFlushInterval,
		drafts:   make(map[string]string),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Set обновляет черновик заметки клиента. Запись в репозиторий произойдёт
// на ближайшем flush.
func (a *Autosaver) Set(account, text string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.drafts[account] = text
}

// Discard отбрасывает несохранённый черновик клиента.
func (a *Autosaver) Discard(account string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.drafts, account)
}

// Commit немедленно сохраняет финальную версию заметки и отбрасывает
// черновик; autosave этого счёта до следующего Set ничего не делает.
func (a *Autosaver) Commit(account, text string) error {
	if err := a.repo.Save(account, text); err != nil {
		return err
	}
	a.Discard(account)
	return nil
}

// Load возвращает актуальный текст заметки: несохранённый черновик,
// если он есть, иначе версию из репозитория.
func (a *Autosaver) Load(account string) (string, error) {
	a.mu.Lock()
	text, ok := a.drafts[account]
	a.mu.Unlock()
	if ok {
		return text, nil
	}
	return a.repo.Get(account)
}

// Pending возвращает количество несохранённых черновиков.
func (a *Autosaver) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.drafts)
}

// Flush сбрасывает все черновики в репозиторий. Черновик, который не удалось
// сохранить, остаётся в буфере до следующей попытки.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	drafts := a.drafts
	a.drafts = make(map[string]string)
	a.mu.Unlock()

	for account, text := range drafts {
		if err := a.repo.Save(account, text); err != nil {
			a.logger.WithError(err).WithField("account", account).Warn("failed to save annotation")
			a.mu.Lock()
			// Не затираем более свежий черновик, появившийся во время flush.
			if _, exists := a.drafts[account]; !exists {
				a.drafts[account] = text
			}
			a.mu.Unlock()
		}
	}
}

// Run запускает периодический autosave до отмены ctx; на выходе выполняется
// финальный flush.
func (a *Autosaver) Run(ctx context.Context) {
	if a.repo == nil {
		a.logger.Warn("annotations autosaver is disabled: repo is nil")
		return
	}

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.logger.WithField("interval", a.interval).Info("annotations autosaver started")
	for {
		select {
		case <-ctx.Done():
			a.Flush()
			a.logger.Info("annotations autosaver stopped")
			return
		case <-ticker.C:
			a.Flush()
		}
	}
}
