package memory

import (
	"context"
	"sync"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/logger"
)

// CustomerRepository is the customer registry. Lookups are a linear scan in
// registration order; NationalID is unique across the registry.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []domain.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(_ context.Context, customer domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.find(customer.NationalID); ok {
		logger.Info("customer repository duplicate national id", logger.Fields{
			"nationalId": customer.NationalID,
		})
		return domain.Customer{}, domain.ErrDuplicateCustomer
	}

	r.customers = append(r.customers, customer)
	logger.Info("customer repository create success", logger.Fields{
		"customerId": customer.ID,
		"nationalId": customer.NationalID,
	})

	return customer, nil
}

func (r *CustomerRepository) GetByNationalID(_ context.Context, nationalID string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.find(nationalID)
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	return customer, nil
}

func (r *CustomerRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.customers), nil
}

func (r *CustomerRepository) find(nationalID string) (domain.Customer, bool) {
	for _, customer := range r.customers {
		if customer.NationalID == nationalID {
			return customer, true
		}
	}
	return domain.Customer{}, false
}
