package service_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/usecase/services"
)

type BankService interface {
	Execute(ctx context.Context, cmd services.Command) (services.Result, error)
	Customer(ctx context.Context, nationalID string) (domain.Customer, error)
	PrimaryAccount(ctx context.Context, nationalID string) (domain.Account, error)
}

var _ BankService = (*services.BankService)(nil)
