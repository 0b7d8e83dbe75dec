package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func newBank() *services.BankService {
	return services.NewBankService(
		memory.NewCustomerRepository(),
		memory.NewAccountRepository(),
		services.WithClock(func() time.Time { return fixedNow }),
	)
}

func amount(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func registerAda(t *testing.T, bank *services.BankService, nationalID string) {
	t.Helper()
	_, err := bank.RegisterCustomer(context.Background(), services.RegisterCustomerCommand{
		Name:       "Ada Lovelace",
		BirthDate:  "10-12-1815",
		NationalID: nationalID,
		Address:    "St James's Square, 12 - London/UK",
	})
	if err != nil {
		t.Fatalf("register customer %s: %v", nationalID, err)
	}
}

type accountRepoStub struct {
	domain.AccountRepository
	updateErr error
}

func (s accountRepoStub) Update(context.Context, domain.Account) (domain.Account, error) {
	return domain.Account{}, s.updateErr
}

func TestBankServiceRegisterCustomerDuplicate(t *testing.T) {
	ctx := context.Background()
	customers := memory.NewCustomerRepository()
	bank := services.NewBankService(customers, memory.NewAccountRepository())
	registerAda(t, bank, "111")

	_, err := bank.RegisterCustomer(ctx, services.RegisterCustomerCommand{Name: "Other", NationalID: "111"})
	if !errors.Is(err, domain.ErrDuplicateCustomer) {
		t.Fatalf("expected ErrDuplicateCustomer, got %v", err)
	}

	count, _ := customers.Count(ctx)
	if count != 1 {
		t.Fatalf("expected registry size 1, got %d", count)
	}
}

func TestBankServiceOpenAccountUnknownCustomer(t *testing.T) {
	ctx := context.Background()
	bank := newBank()

	_, err := bank.OpenAccount(ctx, services.OpenAccountCommand{NationalID: "999"})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	accounts, err := bank.ListAccounts(ctx)
	if err != nil || len(accounts) != 0 {
		t.Fatalf("expected no accounts, got %d (%v)", len(accounts), err)
	}
}

func TestBankServiceOpenAccountNumbersSequentially(t *testing.T) {
	ctx := context.Background()
	bank := newBank()
	registerAda(t, bank, "111")
	registerAda(t, bank, "222")

	for i, id := range []string{"111", "222", "111"} {
		account, err := bank.OpenAccount(ctx, services.OpenAccountCommand{NationalID: id})
		if err != nil {
			t.Fatalf("open account %d: %v", i+1, err)
		}
		if account.Number != i+1 || account.BranchCode != "0001" || account.Owner.NationalID != id {
			t.Fatalf("unexpected account %+v", account)
		}
		if !account.CreatedAt.Equal(fixedNow) {
			t.Fatalf("expected clock time, got %s", account.CreatedAt)
		}
	}

	owned, err := bank.AccountsFor(ctx, "111")
	if err != nil || len(owned) != 2 || owned[0].Number != 1 || owned[1].Number != 3 {
		t.Fatalf("unexpected accounts for 111: %+v (%v)", owned, err)
	}

	primary, err := bank.PrimaryAccount(ctx, "111")
	if err != nil || primary.Number != 1 {
		t.Fatalf("expected first account as primary, got %+v (%v)", primary, err)
	}
}

func TestBankServiceAccountsForCustomerWithoutAccounts(t *testing.T) {
	ctx := context.Background()
	bank := newBank()
	registerAda(t, bank, "111")

	accounts, err := bank.AccountsFor(ctx, "111")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if accounts == nil || len(accounts) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", accounts)
	}

	if _, err := bank.PrimaryAccount(ctx, "111"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if _, err := bank.AccountsFor(ctx, "999"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestBankServiceLedgerScenario(t *testing.T) {
	ctx := context.Background()
	bank := newBank()
	registerAda(t, bank, "111")

	account, err := bank.OpenAccount(ctx, services.OpenAccountCommand{NationalID: "111"})
	if err != nil {
		t.Fatalf("open account: %v", err)
	}
	if account.Number != 1 || !account.Balance.IsZero() {
		t.Fatalf("unexpected new account %+v", account)
	}

	account, err = bank.Deposit(ctx, services.DepositCommand{NationalID: "111", Amount: amount("200")})
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if account.Balance.StringFixed(2) != "200.00" || len(account.Movements) != 1 {
		t.Fatalf("unexpected account after deposit %+v", account)
	}

	if _, err := bank.Withdraw(ctx, services.WithdrawCommand{NationalID: "111", Amount: amount("600")}); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds for 600 against 200, got %v", err)
	}

	if _, err := bank.Deposit(ctx, services.DepositCommand{NationalID: "111", Amount: amount("800")}); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := bank.Withdraw(ctx, services.WithdrawCommand{NationalID: "111", Amount: amount("600")}); !errors.Is(err, domain.ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}

	for i := 0; i < 3; i++ {
		account, err = bank.Withdraw(ctx, services.WithdrawCommand{NationalID: "111", Amount: amount("100")})
		if err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
	}
	if account.Withdrawals != 3 || account.Balance.StringFixed(2) != "700.00" {
		t.Fatalf("unexpected account after withdrawals %+v", account)
	}

	if _, err := bank.Withdraw(ctx, services.WithdrawCommand{NationalID: "111", Amount: amount("1")}); !errors.Is(err, domain.ErrWithdrawalCountExceeded) {
		t.Fatalf("expected ErrWithdrawalCountExceeded, got %v", err)
	}

	statement, err := bank.Statement(ctx, "111")
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if len(statement.Movements) != 5 || statement.Balance.StringFixed(2) != "700.00" {
		t.Fatalf("unexpected statement %+v", statement)
	}
}

func TestBankServiceDepositRejectedLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	bank := newBank()
	registerAda(t, bank, "111")
	if _, err := bank.OpenAccount(ctx, services.OpenAccountCommand{NationalID: "111"}); err != nil {
		t.Fatalf("open account: %v", err)
	}

	if _, err := bank.Deposit(ctx, services.DepositCommand{NationalID: "111", Amount: amount("-1")}); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	statement, err := bank.Statement(ctx, "111")
	if err != nil {
		t.Fatalf("statement: %v", err)
	}
	if !statement.IsEmpty() || !statement.Balance.IsZero() {
		t.Fatalf("expected untouched account, got %+v", statement)
	}
}

func TestBankServiceDepositUnknownCustomerAndMissingAccount(t *testing.T) {
	ctx := context.Background()
	bank := newBank()

	if _, err := bank.Deposit(ctx, services.DepositCommand{NationalID: "999", Amount: amount("10")}); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	registerAda(t, bank, "111")
	if _, err := bank.Deposit(ctx, services.DepositCommand{NationalID: "111", Amount: amount("10")}); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestBankServiceRepositoryFailureIsSurfaced(t *testing.T) {
	ctx := context.Background()
	accounts := memory.NewAccountRepository()
	bank := services.NewBankService(memory.NewCustomerRepository(), accountRepoStub{
		AccountRepository: accounts,
		updateErr:         errors.New("disk on fire"),
	})
	registerAda(t, bank, "111")
	if _, err := bank.OpenAccount(ctx, services.OpenAccountCommand{NationalID: "111"}); err != nil {
		t.Fatalf("open account: %v", err)
	}

	if _, err := bank.Deposit(ctx, services.DepositCommand{NationalID: "111", Amount: amount("10")}); err == nil {
		t.Fatal("expected repository error")
	}

	stored, _ := accounts.List(ctx)
	if !stored[0].Balance.IsZero() {
		t.Fatalf("expected stored balance unchanged, got %s", stored[0].Balance)
	}
}

func TestBankServiceConcurrentDepositsDoNotInterleave(t *testing.T) {
	ctx := context.Background()
	bank := newBank()
	registerAda(t, bank, "111")
	if _, err := bank.OpenAccount(ctx, services.OpenAccountCommand{NationalID: "111"}); err != nil {
		t.Fatalf("open account: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = bank.Deposit(ctx, services.DepositCommand{NationalID: "111", Amount: amount("1.01")})
		}()
	}
	wg.Wait()

	account, err := bank.PrimaryAccount(ctx, "111")
	if err != nil {
		t.Fatalf("primary account: %v", err)
	}
	if account.Balance.StringFixed(2) != "50.50" || len(account.Movements) != 50 {
		t.Fatalf("expected 50 deposits totalling 50.50, got %s over %d", account.Balance, len(account.Movements))
	}
}
