package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/usecase/service_interfaces"
	"github.com/api-sage/branch-ledger/src/internal/usecase/services"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type AccountController struct {
	bank service_interfaces.BankService
}

func NewAccountController(bank service_interfaces.BankService) *AccountController {
	return &AccountController{bank: bank}
}

func (c *AccountController) RegisterRoutes(r chi.Router) {
	r.Post("/accounts", c.openAccount)
	r.Get("/accounts", c.listAccounts)
	r.Post("/deposits", c.deposit)
	r.Post("/withdrawals", c.withdraw)
}

func (c *AccountController) openAccount(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.OpenAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalid[models.AccountResponse](w, r, "invalid request body", err, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeInvalid[models.AccountResponse](w, r, "validation failed", err, start)
		return
	}

	result, err := c.bank.Execute(r.Context(), services.OpenAccountCommand{NationalID: req.NationalID})
	if err != nil {
		writeFailure[models.AccountResponse](w, r, err, start)
		return
	}

	writeSuccess(w, r, http.StatusCreated, "account opened successfully", models.NewAccountResponse(*result.Account), start)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	result, err := c.bank.Execute(r.Context(), services.ListAccountsCommand{})
	if err != nil {
		writeFailure[[]models.AccountResponse](w, r, err, start)
		return
	}

	writeSuccess(w, r, http.StatusOK, "accounts fetched successfully", models.NewAccountListResponse(result.Accounts), start)
}

func (c *AccountController) deposit(w http.ResponseWriter, r *http.Request) {
	c.post(w, r, "funds deposited successfully", func(nationalID string, amount decimal.Decimal) services.Command {
		return services.DepositCommand{NationalID: nationalID, Amount: amount}
	})
}

func (c *AccountController) withdraw(w http.ResponseWriter, r *http.Request) {
	c.post(w, r, "funds withdrawn successfully", func(nationalID string, amount decimal.Decimal) services.Command {
		return services.WithdrawCommand{NationalID: nationalID, Amount: amount}
	})
}

func (c *AccountController) post(w http.ResponseWriter, r *http.Request, message string, build func(string, decimal.Decimal) services.Command) {
	start := time.Now()

	var req models.PostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalid[models.AccountResponse](w, r, "invalid request body", err, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeInvalid[models.AccountResponse](w, r, "validation failed", err, start)
		return
	}

	amount, err := req.ParsedAmount()
	if err != nil {
		writeInvalid[models.AccountResponse](w, r, "validation failed", err, start)
		return
	}

	result, err := c.bank.Execute(r.Context(), build(req.NationalID, amount))
	if err != nil {
		writeFailure[models.AccountResponse](w, r, err, start)
		return
	}

	writeSuccess(w, r, http.StatusOK, message, models.NewAccountResponse(*result.Account), start)
}
