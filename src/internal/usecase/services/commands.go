package services

import (
	"context"
	"fmt"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

// Command is a closed set of bank operations. Only types in this package
// implement it.
type Command interface {
	Operation() string
	command()
}

type RegisterCustomerCommand struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birthDate"`
	NationalID string `json:"nationalId"`
	Address    string `json:"address"`
}

type OpenAccountCommand struct {
	NationalID string `json:"nationalId"`
}

type ListAccountsCommand struct{}

type AccountsForCommand struct {
	NationalID string `json:"nationalId"`
}

type DepositCommand struct {
	NationalID string          `json:"nationalId"`
	Amount     decimal.Decimal `json:"amount"`
}

type WithdrawCommand struct {
	NationalID string          `json:"nationalId"`
	Amount     decimal.Decimal `json:"amount"`
}

type StatementCommand struct {
	NationalID string `json:"nationalId"`
}

func (RegisterCustomerCommand) Operation() string { return "register_customer" }
func (OpenAccountCommand) Operation() string      { return "open_account" }
func (ListAccountsCommand) Operation() string     { return "list_accounts" }
func (AccountsForCommand) Operation() string      { return "accounts_for" }
func (DepositCommand) Operation() string          { return "deposit" }
func (WithdrawCommand) Operation() string         { return "withdraw" }
func (StatementCommand) Operation() string        { return "statement" }

func (RegisterCustomerCommand) command() {}
func (OpenAccountCommand) command()      {}
func (ListAccountsCommand) command()     {}
func (AccountsForCommand) command()      {}
func (DepositCommand) command()          {}
func (WithdrawCommand) command()         {}
func (StatementCommand) command()        {}

// Operations that are not commands of their own but are still counted.
const (
	operationFindCustomer   = "find_customer"
	operationPrimaryAccount = "primary_account"
)

// Result carries whichever values the executed command produced.
type Result struct {
	Operation string
	Customer  *domain.Customer
	Account   *domain.Account
	Accounts  []domain.Account
	Statement *domain.Statement
}

func (s *BankService) Execute(ctx context.Context, cmd Command) (Result, error) {
	switch c := cmd.(type) {
	case RegisterCustomerCommand:
		customer, err := s.RegisterCustomer(ctx, c)
		if err != nil {
			return Result{Operation: c.Operation()}, err
		}
		return Result{Operation: c.Operation(), Customer: &customer}, nil
	case OpenAccountCommand:
		account, err := s.OpenAccount(ctx, c)
		if err != nil {
			return Result{Operation: c.Operation()}, err
		}
		return Result{Operation: c.Operation(), Account: &account}, nil
	case ListAccountsCommand:
		accounts, err := s.ListAccounts(ctx)
		return Result{Operation: c.Operation(), Accounts: accounts}, err
	case AccountsForCommand:
		accounts, err := s.AccountsFor(ctx, c.NationalID)
		return Result{Operation: c.Operation(), Accounts: accounts}, err
	case DepositCommand:
		account, err := s.Deposit(ctx, c)
		if err != nil {
			return Result{Operation: c.Operation()}, err
		}
		return Result{Operation: c.Operation(), Account: &account}, nil
	case WithdrawCommand:
		account, err := s.Withdraw(ctx, c)
		if err != nil {
			return Result{Operation: c.Operation()}, err
		}
		return Result{Operation: c.Operation(), Account: &account}, nil
	case StatementCommand:
		statement, err := s.Statement(ctx, c.NationalID)
		if err != nil {
			return Result{Operation: c.Operation()}, err
		}
		return Result{Operation: c.Operation(), Statement: &statement}, nil
	default:
		return Result{}, fmt.Errorf("execute %T: %w", cmd, domain.ErrUnknownCommand)
	}
}
