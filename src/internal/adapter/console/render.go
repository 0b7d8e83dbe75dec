package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/api-sage/branch-ledger/src/internal/commons"
	"github.com/api-sage/branch-ledger/src/internal/domain"
)

var accountSeparator = strings.Repeat("=", 100)

func renderStatement(w io.Writer, statement domain.Statement) {
	lines := commons.StatementLines(statement)
	body, balance := lines[:len(lines)-1], lines[len(lines)-1]

	fmt.Fprintln(w, statementHeader)
	for _, line := range body {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, balance)
	fmt.Fprintln(w, statementFooter)
}

func renderAccounts(w io.Writer, accounts []domain.Account) {
	fmt.Fprintln(w, accountListHeader)
	if len(accounts) == 0 {
		fmt.Fprintln(w, msgNoAccounts)
		return
	}

	for _, account := range accounts {
		fmt.Fprintln(w, accountSeparator)
		fmt.Fprintf(w, "Branch:\t%s\nAccount:\t%d\nHolder:\t%s\n", account.BranchCode, account.Number, account.Owner.Name)
	}
	fmt.Fprintln(w, accountSeparator)
}
