package domain

import "context"

type CustomerRepository interface {
	Create(ctx context.Context, customer Customer) (Customer, error)
	GetByNationalID(ctx context.Context, nationalID string) (Customer, error)
	Count(ctx context.Context) (int, error)
}
