package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementKind string

const (
	MovementDeposit  MovementKind = "DEPOSIT"
	MovementWithdraw MovementKind = "WITHDRAW"
)

type Movement struct {
	ID           string
	Kind         MovementKind
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	RecordedAt   time.Time
}

type Statement struct {
	BranchCode    string
	AccountNumber int
	Movements     []Movement
	Balance       decimal.Decimal
}

func (s Statement) IsEmpty() bool {
	return len(s.Movements) == 0
}
