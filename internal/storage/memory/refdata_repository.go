package memory

import (
	"sync"

	"github.com/anovainvest/allocations/internal/domain"
)

// refDataRepositoryInMemory — справочник клиентов и активов, только чтение
// после конструирования.
type refDataRepositoryInMemory struct {
	mu      sync.RWMutex
	clients []domain.Client
	assets  []domain.Asset
}

// NewReferenceDataRepository создаёт справочный репозиторий поверх готовых списков.
func NewReferenceDataRepository(clients []domain.Client, assets []domain.Asset) domain.ReferenceDataRepository {
	return &refDataRepositoryInMemory{
		clients: append([]domain.Client(nil), clients...),
		assets:  append([]domain.Asset(nil), assets...),
	}
}

// ListClients возвращает копию списка клиентов в исходном порядке.
func (r *refDataRepositoryInMemory) ListClients() []domain.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Client, len(r.clients))
	copy(result, r.clients)
	return result
}

// GetClient возвращает клиента по счёту или ErrClientNotFound.
func (r *refDataRepositoryInMemory) GetClient(account string) (domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, client := range r.clients {
		if client.Account == account {
			return client, nil
		}
	}
	return domain.Client{}, domain.ErrClientNotFound
}

// ListAssets возвращает копию списка активов в исходном порядке.
func (r *refDataRepositoryInMemory) ListAssets() []domain.Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Asset, len(r.assets))
	copy(result, r.assets)
	return result
}

// GetAsset возвращает актив по идентификатору или ErrAssetNotFound.
func (r *refDataRepositoryInMemory) GetAsset(id string) (domain.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, asset := range r.assets {
		if asset.ID == id {
			return asset, nil
		}
	}
	return domain.Asset{}, domain.ErrAssetNotFound
}

var _ domain.ReferenceDataRepository = (*refDataRepositoryInMemory)(nil)
