package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

func TestCustomerRepositoryRejectsDuplicateNationalID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCustomerRepository()

	if _, err := repo.Create(ctx, domain.Customer{ID: "a", Name: "Ada", NationalID: "111"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	_, err := repo.Create(ctx, domain.Customer{ID: "b", Name: "Bob", NationalID: "111"})
	if !errors.Is(err, domain.ErrDuplicateCustomer) {
		t.Fatalf("expected ErrDuplicateCustomer, got %v", err)
	}

	count, _ := repo.Count(ctx)
	if count != 1 {
		t.Fatalf("expected registry size 1, got %d", count)
	}
	found, err := repo.GetByNationalID(ctx, "111")
	if err != nil || found.Name != "Ada" {
		t.Fatalf("expected original customer, got %+v (%v)", found, err)
	}
}

func TestCustomerRepositoryGetByNationalIDNotFound(t *testing.T) {
	_, err := memory.NewCustomerRepository().GetByNationalID(context.Background(), "999")
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestAccountRepositoryKeepsCreationOrderAndIsolatesCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	ada := domain.Customer{NationalID: "111"}
	bob := domain.Customer{NationalID: "222"}
	now := time.Now().UTC()

	for i, owner := range []domain.Customer{ada, bob, ada} {
		if _, err := repo.Create(ctx, domain.NewAccount(domain.DefaultBranchCode, i+1, owner, now)); err != nil {
			t.Fatalf("create %d failed: %v", i+1, err)
		}
	}

	owned, _ := repo.ListByNationalID(ctx, "111")
	if len(owned) != 2 || owned[0].Number != 1 || owned[1].Number != 3 {
		t.Fatalf("unexpected accounts for 111: %+v", owned)
	}

	first := owned[0]
	if _, err := first.Deposit(decimal.NewFromInt(10), now); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}
	stored, _ := repo.List(ctx)
	if !stored[0].Balance.IsZero() || len(stored[0].Movements) != 0 {
		t.Fatal("expected stored account untouched until Update")
	}

	if _, err := repo.Update(ctx, first); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	stored, _ = repo.List(ctx)
	if !stored[0].Balance.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected updated balance, got %s", stored[0].Balance)
	}
}

func TestAccountRepositoryRejectsReusedNumber(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	account := domain.NewAccount(domain.DefaultBranchCode, 1, domain.Customer{NationalID: "111"}, time.Now())

	if _, err := repo.Create(ctx, account); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := repo.Create(ctx, account); err == nil {
		t.Fatal("expected error for reused account number")
	}
}

func TestAccountRepositoryUpdateUnknownAccount(t *testing.T) {
	account := domain.NewAccount(domain.DefaultBranchCode, 7, domain.Customer{}, time.Now())
	_, err := memory.NewAccountRepository().Update(context.Background(), account)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
