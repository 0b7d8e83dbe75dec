package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/api-sage/branch-ledger/src/internal/commons"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/api-sage/branch-ledger/src/internal/logger"
	"github.com/api-sage/branch-ledger/src/internal/usecase/service_interfaces"
	"github.com/api-sage/branch-ledger/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

var errInputClosed = errors.New("input closed")

// Shell is the interactive menu over a bank. It reads one command per loop,
// collects the fields the command needs and prints the outcome.
type Shell struct {
	bank service_interfaces.BankService
	in   *bufio.Reader
	out  io.Writer
}

func NewShell(bank service_interfaces.BankService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		bank: bank,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Run loops until the user quits, the input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := s.prompt(menuText)
		if err != nil {
			return ignoreClosed(err)
		}

		option := ParseOption(raw)
		if option == OptionQuit {
			s.println(msgFarewell)
			return nil
		}

		if err := s.dispatch(ctx, option); err != nil {
			return ignoreClosed(err)
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, option Option) error {
	switch option {
	case OptionDeposit:
		return s.deposit(ctx)
	case OptionWithdraw:
		return s.withdraw(ctx)
	case OptionStatement:
		return s.statement(ctx)
	case OptionNewAccount:
		return s.newAccount(ctx)
	case OptionListAccounts:
		return s.listAccounts(ctx)
	case OptionNewCustomer:
		return s.newCustomer(ctx)
	default:
		s.println(msgInvalidOperation)
		return nil
	}
}

func (s *Shell) deposit(ctx context.Context) error {
	account, ok, err := s.selectAccount(ctx)
	if err != nil || !ok {
		return err
	}

	amount, ok, err := s.readAmount("Enter the deposit amount: ")
	if err != nil || !ok {
		return err
	}

	s.execute(ctx, services.DepositCommand{NationalID: account.Owner.NationalID, Amount: amount}, msgDepositDone)
	return nil
}

func (s *Shell) withdraw(ctx context.Context) error {
	account, ok, err := s.selectAccount(ctx)
	if err != nil || !ok {
		return err
	}

	amount, ok, err := s.readAmount("Enter the withdrawal amount: ")
	if err != nil || !ok {
		return err
	}

	s.execute(ctx, services.WithdrawCommand{NationalID: account.Owner.NationalID, Amount: amount}, msgWithdrawDone)
	return nil
}

func (s *Shell) statement(ctx context.Context) error {
	account, ok, err := s.selectAccount(ctx)
	if err != nil || !ok {
		return err
	}

	result, execErr := s.bank.Execute(ctx, services.StatementCommand{NationalID: account.Owner.NationalID})
	if execErr != nil {
		s.fail(execErr)
		return nil
	}

	renderStatement(s.out, *result.Statement)
	return nil
}

func (s *Shell) newAccount(ctx context.Context) error {
	nationalID, err := s.prompt("Enter the customer's national ID: ")
	if err != nil {
		return err
	}

	_, execErr := s.bank.Execute(ctx, services.OpenAccountCommand{NationalID: nationalID})
	switch {
	case execErr == nil:
		s.println(msgAccountCreated)
	case errors.Is(execErr, domain.ErrCustomerNotFound):
		s.println(msgAccountFlowEnded)
	default:
		s.fail(execErr)
	}
	return nil
}

func (s *Shell) listAccounts(ctx context.Context) error {
	result, err := s.bank.Execute(ctx, services.ListAccountsCommand{})
	if err != nil {
		s.fail(err)
		return nil
	}

	renderAccounts(s.out, result.Accounts)
	return nil
}

// newCustomer asks for the national ID first and stops before the other
// fields when it is already registered.
func (s *Shell) newCustomer(ctx context.Context) error {
	nationalID, err := s.prompt("Enter the national ID (numbers only): ")
	if err != nil {
		return err
	}

	_, lookupErr := s.bank.Customer(ctx, nationalID)
	if lookupErr == nil {
		s.fail(domain.ErrDuplicateCustomer)
		return nil
	}
	if !errors.Is(lookupErr, domain.ErrCustomerNotFound) {
		s.fail(lookupErr)
		return nil
	}

	name, err := s.prompt("Enter the full name: ")
	if err != nil {
		return err
	}
	birthDate, err := s.prompt("Enter the birth date (dd-mm-yyyy): ")
	if err != nil {
		return err
	}
	address, err := s.prompt("Enter the address (street, number - district - city/state): ")
	if err != nil {
		return err
	}

	s.execute(ctx, services.RegisterCustomerCommand{
		Name:       name,
		BirthDate:  birthDate,
		NationalID: nationalID,
		Address:    address,
	}, msgCustomerCreated)
	return nil
}

// selectAccount resolves the first account of the customer whose national ID
// is typed in. ok is false when nothing could be selected; the reason has
// already been printed.
func (s *Shell) selectAccount(ctx context.Context) (domain.Account, bool, error) {
	nationalID, err := s.prompt("Enter the customer's national ID: ")
	if err != nil {
		return domain.Account{}, false, err
	}

	account, lookupErr := s.bank.PrimaryAccount(ctx, nationalID)
	if lookupErr != nil {
		s.fail(lookupErr)
		return domain.Account{}, false, nil
	}
	return account, true, nil
}

func (s *Shell) readAmount(label string) (decimal.Decimal, bool, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return decimal.Zero, false, err
	}

	amount, parseErr := commons.ParseAmount(raw)
	if parseErr != nil {
		logger.Info("console amount parse failed", logger.Fields{
			"input": raw,
			"error": parseErr.Error(),
		})
		s.println(msgInvalidValue)
		return decimal.Zero, false, nil
	}
	return amount, true, nil
}

func (s *Shell) execute(ctx context.Context, cmd services.Command, success string) {
	if _, err := s.bank.Execute(ctx, cmd); err != nil {
		s.fail(err)
		return
	}
	s.println(success)
}

func (s *Shell) fail(err error) {
	message := failureMessage(err)
	if message == msgUnexpected {
		logger.Error("console operation failed", err, nil)
	}
	s.println(message)
}

func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) println(message string) {
	fmt.Fprintln(s.out, message)
}

func ignoreClosed(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}
