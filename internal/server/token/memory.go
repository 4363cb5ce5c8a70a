package token

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tokenlocker/internal/common"
	"github.com/dmitrijs2005/tokenlocker/internal/pubkey"
	"github.com/dmitrijs2005/tokenlocker/internal/server/models"
)

// MemoryRepository keeps holdings in a map. It has no transactions and no
// row locks; it backs tests and local simulations only.
type MemoryRepository struct {
	mu       sync.Mutex
	holdings map[pubkey.Address]models.Holding
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{holdings: make(map[pubkey.Address]models.Holding)}
}

func (m *MemoryRepository) Provision(_ context.Context, h *models.Holding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.holdings[h.Address]; !ok {
		m.holdings[h.Address] = *h
	}
	return nil
}

func (m *MemoryRepository) Get(_ context.Context, address pubkey.Address) (*models.Holding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.holdings[address]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &h, nil
}

func (m *MemoryRepository) GetForUpdate(ctx context.Context, address pubkey.Address) (*models.Holding, error) {
	return m.Get(ctx, address)
}

func (m *MemoryRepository) SetBalance(_ context.Context, address pubkey.Address, balance uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.holdings[address]
	if !ok {
		return common.ErrorNotFound
	}
	h.Balance = balance
	m.holdings[address] = h
	return nil
}
