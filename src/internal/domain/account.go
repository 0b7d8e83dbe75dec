package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultBranchCode = "0001"
	MaxWithdrawals    = 3
)

// WithdrawalLimit caps a single withdrawal, independent of balance.
var WithdrawalLimit = decimal.NewFromInt(500)

type Account struct {
	ID              string
	BranchCode      string
	Number          int
	Owner           Customer
	Balance         decimal.Decimal
	WithdrawalLimit decimal.Decimal
	Withdrawals     int
	MaxWithdrawals  int
	Movements       []Movement
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewAccount(branchCode string, number int, owner Customer, now time.Time) Account {
	return Account{
		ID:              uuid.NewString(),
		BranchCode:      branchCode,
		Number:          number,
		Owner:           owner,
		Balance:         decimal.Zero,
		WithdrawalLimit: WithdrawalLimit,
		MaxWithdrawals:  MaxWithdrawals,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Deposit credits a strictly positive amount.
func (a *Account) Deposit(amount decimal.Decimal, at time.Time) (Movement, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Movement{}, ErrInvalidAmount
	}

	a.Balance = a.Balance.Add(amount)
	return a.record(MovementDeposit, amount, at), nil
}

// Withdraw evaluates its rejections in a fixed order: balance, per-withdrawal
// limit, withdrawal count and only then positivity. The first match wins.
func (a *Account) Withdraw(amount decimal.Decimal, at time.Time) (Movement, error) {
	switch {
	case amount.GreaterThan(a.Balance):
		return Movement{}, ErrInsufficientFunds
	case amount.GreaterThan(a.WithdrawalLimit):
		return Movement{}, ErrLimitExceeded
	case a.Withdrawals >= a.MaxWithdrawals:
		return Movement{}, ErrWithdrawalCountExceeded
	case amount.LessThanOrEqual(decimal.Zero):
		return Movement{}, ErrInvalidAmount
	}

	a.Balance = a.Balance.Sub(amount)
	a.Withdrawals++
	return a.record(MovementWithdraw, amount, at), nil
}

func (a Account) Statement() Statement {
	return Statement{
		BranchCode:    a.BranchCode,
		AccountNumber: a.Number,
		Movements:     slices.Clone(a.Movements),
		Balance:       a.Balance,
	}
}

// Clone returns a copy that shares no movement storage with a.
func (a Account) Clone() Account {
	a.Movements = slices.Clone(a.Movements)
	return a
}

func (a *Account) record(kind MovementKind, amount decimal.Decimal, at time.Time) Movement {
	movement := Movement{
		ID:           uuid.NewString(),
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: a.Balance,
		RecordedAt:   at,
	}
	a.Movements = append(a.Movements, movement)
	a.UpdatedAt = at
	return movement
}
