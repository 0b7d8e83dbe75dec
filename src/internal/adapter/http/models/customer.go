package models

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/branch-ledger/src/internal/domain"
)

type RegisterCustomerRequest struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birthDate"`
	NationalID string `json:"nationalId"`
	Address    string `json:"address"`
}

func (r RegisterCustomerRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.NationalID) == "" {
		errs = append(errs, "nationalId is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CustomerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BirthDate  string `json:"birthDate"`
	NationalID string `json:"nationalId"`
	Address    string `json:"address"`
	CreatedAt  string `json:"createdAt"`
}

func NewCustomerResponse(customer domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         customer.ID,
		Name:       customer.Name,
		BirthDate:  customer.BirthDate,
		NationalID: customer.NationalID,
		Address:    customer.Address,
		CreatedAt:  customer.CreatedAt.Format(time.RFC3339),
	}
}
