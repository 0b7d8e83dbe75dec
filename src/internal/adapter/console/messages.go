package console

import (
	"errors"

	"github.com/api-sage/branch-ledger/src/internal/domain"
)

const menuText = `
================ MENU ================
[d]	Deposit
[s]	Withdraw
[e]	Statement
[nc]	New account
[lc]	List accounts
[nu]	New customer
[q]	Quit
=> `

const (
	msgFarewell         = "Thank you for using the banking system. Goodbye!"
	msgInvalidOperation = "Invalid operation, please select the desired operation again."
	msgInvalidValue     = "\n@@@ Operation failed! Invalid value. @@@"
	msgDepositDone      = "\n=== Deposit completed successfully! ==="
	msgWithdrawDone     = "\n=== Withdrawal completed successfully! ==="
	msgCustomerCreated  = "=== Customer created successfully! ==="
	msgAccountCreated   = "\n=== Account created successfully! ==="
	msgAccountFlowEnded = "\nCustomer not found, account creation flow ended!"
	msgNoAccounts       = "There are no registered accounts."
	msgUnexpected       = "\n@@@ Operation failed! Unexpected error. @@@"

	statementHeader   = "\n================ STATEMENT ================"
	statementFooter   = "=========================================="
	accountListHeader = "\n================ ACCOUNT LIST ================"
)

// failureMessage maps a failed bank operation to the text shown to the user.
func failureMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateCustomer):
		return "\n@@@ A customer with this national ID already exists! @@@"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "\n@@@ Customer not found! @@@"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "\n@@@ Account not found for the given customer! @@@"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "\n@@@ Operation failed! The amount entered is invalid. @@@"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "\nOperation failed! You do not have enough balance."
	case errors.Is(err, domain.ErrLimitExceeded):
		return "\nOperation failed! The withdrawal amount exceeds the limit."
	case errors.Is(err, domain.ErrWithdrawalCountExceeded):
		return "\nOperation failed! Maximum number of withdrawals exceeded."
	default:
		return msgUnexpected
	}
}
