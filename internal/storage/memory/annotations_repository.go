package memory

import (
	"sync"

	"github.com/anovainvest/allocations/internal/domain"
)

// annotationRepositoryInMemory хранит заметки по клиентам в памяти
// (для локальной разработки и тестов).
type annotationRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewAnnotationRepository создаёт in-memory реализацию AnnotationRepository.
func NewAnnotationRepository() domain.AnnotationRepository {
	return &annotationRepositoryInMemory{items: make(map[string]string)}
}

// Save сохраняет текст заметки по счёту клиента, перезаписывая прежний.
func (r *annotationRepositoryInMemory) Save(account, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[account] = text
	return nil
}

// Get возвращает заметку или ErrAnnotationNotFound.
func (r *annotationRepositoryInMemory) Get(account string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	text, ok := r.items[account]
	if !ok {
		return "", domain.ErrAnnotationNotFound
	}
	return text, nil
}

// Delete удаляет заметку; отсутствие записи не считается ошибкой.
func (r *annotationRepositoryInMemory) Delete(account string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, account)
	return nil
}

var _ domain.AnnotationRepository = (*annotationRepositoryInMemory)(nil)
