package commons

import (
	"fmt"

	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

const NoMovementsLine = "No movements were made."

// FormatAmount renders money with exactly two fractional digits.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func MovementLabel(kind domain.MovementKind) string {
	switch kind {
	case domain.MovementDeposit:
		return "Deposit"
	case domain.MovementWithdraw:
		return "Withdraw"
	default:
		return string(kind)
	}
}

func MovementLine(movement domain.Movement) string {
	return fmt.Sprintf("%s: %s", MovementLabel(movement.Kind), FormatAmount(movement.Amount))
}

func BalanceLine(balance decimal.Decimal) string {
	return "Balance: " + FormatAmount(balance)
}

// StatementLines renders a statement body followed by the balance line. An
// empty statement yields the no-movements sentinel in place of the body.
func StatementLines(statement domain.Statement) []string {
	lines := make([]string, 0, len(statement.Movements)+1)
	if statement.IsEmpty() {
		lines = append(lines, NoMovementsLine)
	}
	for _, movement := range statement.Movements {
		lines = append(lines, MovementLine(movement))
	}

	return append(lines, BalanceLine(statement.Balance))
}
