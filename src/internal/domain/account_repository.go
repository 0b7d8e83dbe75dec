package domain

import "context"

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	Update(ctx context.Context, account Account) (Account, error)
	List(ctx context.Context) ([]Account, error)
	ListByNationalID(ctx context.Context, nationalID string) ([]Account, error)
	Count(ctx context.Context) (int, error)
}
