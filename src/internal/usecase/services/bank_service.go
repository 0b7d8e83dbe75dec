package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/commons"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/logger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

var bankOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bank_operations_total",
		Help: "Total number of bank operations by outcome",
	},
	[]string{"operation", "status"},
)

// BankService owns the customer registry and the account collection. A single
// mutex serializes every operation so each one applies fully or not at all.
type BankService struct {
	mu           sync.Mutex
	customerRepo domain.CustomerRepository
	accountRepo  domain.AccountRepository
	branchCode   string
	now          func() time.Time
}

type Option func(*BankService)

func WithClock(now func() time.Time) Option {
	return func(s *BankService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewBankService(customerRepo domain.CustomerRepository, accountRepo domain.AccountRepository, opts ...Option) *BankService {
	s := &BankService{
		customerRepo: customerRepo,
		accountRepo:  accountRepo,
		branchCode:   domain.DefaultBranchCode,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *BankService) RegisterCustomer(ctx context.Context, cmd RegisterCustomerCommand) (customer domain.Customer, err error) {
	defer observe(cmd.Operation(), &err)
	logger.Info("bank service register customer request", logger.Fields{
		"payload": logger.SanitizePayload(cmd),
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	customer = domain.Customer{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(cmd.Name),
		BirthDate:  strings.TrimSpace(cmd.BirthDate),
		NationalID: cmd.NationalID,
		Address:    strings.TrimSpace(cmd.Address),
		CreatedAt:  s.now(),
	}

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		logger.Error("bank service register customer failed", err, logger.Fields{
			"nationalId": customer.NationalID,
		})
		return domain.Customer{}, fmt.Errorf("register customer: %w", err)
	}

	fields := logger.Fields{
		"customerId": created.ID,
		"nationalId": created.NationalID,
	}
	if size, countErr := s.customerRepo.Count(ctx); countErr != nil {
		logger.Error("bank service registry size unavailable", countErr, nil)
	} else {
		fields["registrySize"] = size
	}
	logger.Info("bank service register customer success", fields)

	return created, nil
}

func (s *BankService) Customer(ctx context.Context, nationalID string) (customer domain.Customer, err error) {
	defer observe(operationFindCustomer, &err)
	logger.Info("bank service find customer request", logger.Fields{
		"nationalId": nationalID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err = s.customerRepo.GetByNationalID(ctx, nationalID)
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		logger.Info("bank service find customer not found", logger.Fields{
			"nationalId": nationalID,
		})
		return domain.Customer{}, err
	case err != nil:
		logger.Error("bank service find customer failed", err, logger.Fields{
			"nationalId": nationalID,
		})
		return domain.Customer{}, fmt.Errorf("find customer: %w", err)
	}
	return customer, nil
}

// OpenAccount numbers the new account after the accounts that already exist.
func (s *BankService) OpenAccount(ctx context.Context, cmd OpenAccountCommand) (account domain.Account, err error) {
	defer observe(cmd.Operation(), &err)
	logger.Info("bank service open account request", logger.Fields{
		"nationalId": cmd.NationalID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.customerRepo.GetByNationalID(ctx, cmd.NationalID)
	if err != nil {
		logger.Error("bank service open account customer lookup failed", err, logger.Fields{
			"nationalId": cmd.NationalID,
		})
		return domain.Account{}, fmt.Errorf("open account: %w", err)
	}

	count, err := s.accountRepo.Count(ctx)
	if err != nil {
		logger.Error("bank service open account count failed", err, nil)
		return domain.Account{}, fmt.Errorf("open account: %w", err)
	}

	created, err := s.accountRepo.Create(ctx, domain.NewAccount(s.branchCode, count+1, owner, s.now()))
	if err != nil {
		logger.Error("bank service open account repository failed", err, logger.Fields{
			"nationalId": owner.NationalID,
		})
		return domain.Account{}, fmt.Errorf("open account: %w", err)
	}

	logger.Info("bank service open account success", logger.Fields{
		"accountId":     created.ID,
		"accountNumber": created.Number,
		"nationalId":    owner.NationalID,
	})

	return created, nil
}

// AccountsFor returns the customer's accounts in creation order. The slice is
// empty, not an error, for a registered customer without accounts.
func (s *BankService) AccountsFor(ctx context.Context, nationalID string) (accounts []domain.Account, err error) {
	defer observe(AccountsForCommand{}.Operation(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.accountsFor(ctx, nationalID)
}

// PrimaryAccount is the first account opened by the customer. It is the one
// every deposit, withdrawal and statement acts on.
func (s *BankService) PrimaryAccount(ctx context.Context, nationalID string) (account domain.Account, err error) {
	defer observe(operationPrimaryAccount, &err)
	logger.Info("bank service primary account request", logger.Fields{
		"nationalId": nationalID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err = s.primaryAccount(ctx, nationalID)
	if err != nil {
		logger.Info("bank service primary account failed", logger.Fields{
			"nationalId": nationalID,
			"reason":     err.Error(),
		})
		return domain.Account{}, err
	}
	return account, nil
}

func (s *BankService) ListAccounts(ctx context.Context) (accounts []domain.Account, err error) {
	defer observe(ListAccountsCommand{}.Operation(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err = s.accountRepo.List(ctx)
	if err != nil {
		logger.Error("bank service list accounts failed", err, nil)
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *BankService) Deposit(ctx context.Context, cmd DepositCommand) (domain.Account, error) {
	return s.post(ctx, cmd.Operation(), cmd.NationalID, cmd.Amount, (*domain.Account).Deposit)
}

func (s *BankService) Withdraw(ctx context.Context, cmd WithdrawCommand) (domain.Account, error) {
	return s.post(ctx, cmd.Operation(), cmd.NationalID, cmd.Amount, (*domain.Account).Withdraw)
}

func (s *BankService) Statement(ctx context.Context, nationalID string) (statement domain.Statement, err error) {
	defer observe(StatementCommand{}.Operation(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.primaryAccount(ctx, nationalID)
	if err != nil {
		return domain.Statement{}, fmt.Errorf("statement: %w", err)
	}
	return account.Statement(), nil
}

type postingFunc func(*domain.Account, decimal.Decimal, time.Time) (domain.Movement, error)

func (s *BankService) post(ctx context.Context, operation string, nationalID string, amount decimal.Decimal, apply postingFunc) (account domain.Account, err error) {
	defer observe(operation, &err)

	// Checked before taking the lock: an absurd magnitude would otherwise
	// hold every other caller while it is rescaled.
	if rangeErr := commons.CheckAmountRange(amount); rangeErr != nil {
		logger.Info("bank service "+operation+" rejected", logger.Fields{
			"nationalId": nationalID,
			"reason":     rangeErr.Error(),
		})
		return domain.Account{}, fmt.Errorf("%s: %w", operation, rangeErr)
	}

	logger.Info("bank service "+operation+" request", logger.Fields{
		"nationalId": nationalID,
		"amount":     commons.FormatAmount(amount),
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err = s.primaryAccount(ctx, nationalID)
	if err != nil {
		return domain.Account{}, fmt.Errorf("%s: %w", operation, err)
	}

	movement, err := apply(&account, amount, s.now())
	if err != nil {
		logger.Info("bank service "+operation+" rejected", logger.Fields{
			"accountNumber": account.Number,
			"amount":        commons.FormatAmount(amount),
			"reason":        err.Error(),
		})
		return domain.Account{}, fmt.Errorf("%s: %w", operation, err)
	}

	updated, err := s.accountRepo.Update(ctx, account)
	if err != nil {
		logger.Error("bank service "+operation+" repository failed", err, logger.Fields{
			"accountNumber": account.Number,
		})
		return domain.Account{}, fmt.Errorf("%s: %w", operation, err)
	}

	logger.Info("bank service "+operation+" success", logger.Fields{
		"accountNumber": updated.Number,
		"movementId":    movement.ID,
		"amount":        commons.FormatAmount(movement.Amount),
		"balance":       commons.FormatAmount(updated.Balance),
	})

	return updated, nil
}

func (s *BankService) accountsFor(ctx context.Context, nationalID string) ([]domain.Account, error) {
	if _, err := s.customerRepo.GetByNationalID(ctx, nationalID); err != nil {
		logger.Error("bank service accounts for customer lookup failed", err, logger.Fields{
			"nationalId": nationalID,
		})
		return nil, fmt.Errorf("accounts for customer: %w", err)
	}

	accounts, err := s.accountRepo.ListByNationalID(ctx, nationalID)
	if err != nil {
		logger.Error("bank service accounts for list failed", err, logger.Fields{
			"nationalId": nationalID,
		})
		return nil, fmt.Errorf("accounts for customer: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

func (s *BankService) primaryAccount(ctx context.Context, nationalID string) (domain.Account, error) {
	accounts, err := s.accountsFor(ctx, nationalID)
	if err != nil {
		return domain.Account{}, err
	}
	if len(accounts) == 0 {
		logger.Info("bank service customer has no account", logger.Fields{
			"nationalId": nationalID,
		})
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return accounts[0], nil
}

func observe(operation string, err *error) {
	bankOperations.WithLabelValues(operation, outcome(*err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrDuplicateCustomer):
		return "duplicate_customer"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrLimitExceeded):
		return "limit_exceeded"
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return "withdrawal_count_exceeded"
	default:
		return "error"
	}
}
