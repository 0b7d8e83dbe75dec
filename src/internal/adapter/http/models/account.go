package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/commons"
	"github.com/api-sage/branch-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	NationalID string `json:"nationalId"`
}

func (r OpenAccountRequest) Validate() error {
	if strings.TrimSpace(r.NationalID) == "" {
		return errors.New("nationalId is required")
	}
	return nil
}

// PostingRequest is the body of a deposit or a withdrawal. Validate only
// checks that amount is a bounded decimal; its sign is judged by the account.
type PostingRequest struct {
	NationalID string `json:"nationalId"`
	Amount     string `json:"amount"`
}

func (r PostingRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.NationalID) == "" {
		errs = append(errs, "nationalId is required")
	}

	if strings.TrimSpace(r.Amount) == "" {
		errs = append(errs, "amount is required")
	} else if _, err := commons.ParseAmount(r.Amount); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r PostingRequest) ParsedAmount() (decimal.Decimal, error) {
	return commons.ParseAmount(r.Amount)
}

type AccountResponse struct {
	ID              string `json:"id"`
	BranchCode      string `json:"branchCode"`
	AccountNumber   int    `json:"accountNumber"`
	HolderName      string `json:"holderName"`
	NationalID      string `json:"nationalId"`
	Balance         string `json:"balance"`
	WithdrawalLimit string `json:"withdrawalLimit"`
	Withdrawals     int    `json:"withdrawals"`
	MaxWithdrawals  int    `json:"maxWithdrawals"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

func NewAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		ID:              account.ID,
		BranchCode:      account.BranchCode,
		AccountNumber:   account.Number,
		HolderName:      account.Owner.Name,
		NationalID:      account.Owner.NationalID,
		Balance:         commons.FormatAmount(account.Balance),
		WithdrawalLimit: commons.FormatAmount(account.WithdrawalLimit),
		Withdrawals:     account.Withdrawals,
		MaxWithdrawals:  account.MaxWithdrawals,
		CreatedAt:       account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       account.UpdatedAt.Format(time.RFC3339),
	}
}

func NewAccountListResponse(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, NewAccountResponse(account))
	}
	return out
}

type MovementResponse struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Amount       string `json:"amount"`
	BalanceAfter string `json:"balanceAfter"`
	RecordedAt   string `json:"recordedAt"`
}

type StatementResponse struct {
	BranchCode    string             `json:"branchCode"`
	AccountNumber int                `json:"accountNumber"`
	Movements     []MovementResponse `json:"movements"`
	Lines         []string           `json:"lines"`
	Balance       string             `json:"balance"`
}

func NewStatementResponse(statement domain.Statement) StatementResponse {
	movements := make([]MovementResponse, 0, len(statement.Movements))
	for _, movement := range statement.Movements {
		movements = append(movements, MovementResponse{
			ID:           movement.ID,
			Kind:         string(movement.Kind),
			Amount:       commons.FormatAmount(movement.Amount),
			BalanceAfter: commons.FormatAmount(movement.BalanceAfter),
			RecordedAt:   movement.RecordedAt.Format(time.RFC3339),
		})
	}

	return StatementResponse{
		BranchCode:    statement.BranchCode,
		AccountNumber: statement.AccountNumber,
		Movements:     movements,
		Lines:         commons.StatementLines(statement),
		Balance:       commons.FormatAmount(statement.Balance),
	}
}
