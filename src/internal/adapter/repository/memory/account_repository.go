package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/logger"
)

// AccountRepository keeps accounts in creation order. Every read hands out a
// clone so callers cannot mutate stored movements behind the repository.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Number == account.Number {
			return domain.Account{}, fmt.Errorf("create account: number %d already assigned", account.Number)
		}
	}

	r.accounts = append(r.accounts, account.Clone())
	logger.Info("account repository create success", logger.Fields{
		"accountId":     account.ID,
		"accountNumber": account.Number,
		"nationalId":    account.Owner.NationalID,
	})

	return account.Clone(), nil
}

func (r *AccountRepository) Update(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].Number == account.Number {
			r.accounts[i] = account.Clone()
			return account.Clone(), nil
		}
	}

	logger.Info("account repository record not found for update", logger.Fields{
		"accountNumber": account.Number,
	})
	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *AccountRepository) List(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account.Clone())
	}
	return out, nil
}

func (r *AccountRepository) ListByNationalID(_ context.Context, nationalID string) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Account
	for _, account := range r.accounts {
		if account.Owner.NationalID == nationalID {
			out = append(out, account.Clone())
		}
	}
	return out, nil
}

func (r *AccountRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.accounts), nil
}
