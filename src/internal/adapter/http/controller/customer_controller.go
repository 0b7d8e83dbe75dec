package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/src/internal/usecase/service_interfaces"
	"github.com/api-sage/branch-ledger/src/internal/usecase/services"
	"github.com/go-chi/chi/v5"
)

type CustomerController struct {
	bank service_interfaces.BankService
}

func NewCustomerController(bank service_interfaces.BankService) *CustomerController {
	return &CustomerController{bank: bank}
}

func (c *CustomerController) RegisterRoutes(r chi.Router) {
	r.Route("/customers", func(cr chi.Router) {
		cr.Post("/", c.registerCustomer)
		cr.Get("/{nationalId}/accounts", c.customerAccounts)
		cr.Get("/{nationalId}/statement", c.customerStatement)
	})
}

func (c *CustomerController) registerCustomer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalid[models.CustomerResponse](w, r, "invalid request body", err, start)
		return
	}
	logRequest(r, req)

	if err := req.Validate(); err != nil {
		writeInvalid[models.CustomerResponse](w, r, "validation failed", err, start)
		return
	}

	result, err := c.bank.Execute(r.Context(), services.RegisterCustomerCommand{
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		NationalID: req.NationalID,
		Address:    req.Address,
	})
	if err != nil {
		writeFailure[models.CustomerResponse](w, r, err, start)
		return
	}

	writeSuccess(w, r, http.StatusCreated, "customer registered successfully", models.NewCustomerResponse(*result.Customer), start)
}

func (c *CustomerController) customerAccounts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	result, err := c.bank.Execute(r.Context(), services.AccountsForCommand{NationalID: chi.URLParam(r, "nationalId")})
	if err != nil {
		writeFailure[[]models.AccountResponse](w, r, err, start)
		return
	}

	writeSuccess(w, r, http.StatusOK, "accounts fetched successfully", models.NewAccountListResponse(result.Accounts), start)
}

func (c *CustomerController) customerStatement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	result, err := c.bank.Execute(r.Context(), services.StatementCommand{NationalID: chi.URLParam(r, "nationalId")})
	if err != nil {
		writeFailure[models.StatementResponse](w, r, err, start)
		return
	}

	writeSuccess(w, r, http.StatusOK, "statement fetched successfully", models.NewStatementResponse(*result.Statement), start)
}
