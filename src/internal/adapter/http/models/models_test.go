package models

import (
	"errors"
	"testing"

	"github.com/api-sage/branch-ledger/src/internal/domain"
)

func TestPostingRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     PostingRequest
		wantErr bool
	}{
		{name: "valid", req: PostingRequest{NationalID: "111", Amount: "10.50"}},
		{name: "negative left to the account", req: PostingRequest{NationalID: "111", Amount: "-1"}},
		{name: "zero left to the account", req: PostingRequest{NationalID: "111", Amount: "0"}},
		{name: "missing national id", req: PostingRequest{Amount: "1"}, wantErr: true},
		{name: "missing amount", req: PostingRequest{NationalID: "111"}, wantErr: true},
		{name: "non numeric amount", req: PostingRequest{NationalID: "111", Amount: "ten"}, wantErr: true},
		{name: "huge exponent", req: PostingRequest{NationalID: "111", Amount: "1e50000000"}, wantErr: true},
		{name: "exponent at decimal limit", req: PostingRequest{NationalID: "111", Amount: "1e2000000000"}, wantErr: true},
		{name: "too many decimal places", req: PostingRequest{NationalID: "111", Amount: "1e-50000000"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterCustomerRequestValidate(t *testing.T) {
	if err := (RegisterCustomerRequest{}).Validate(); err == nil {
		t.Fatal("expected validation error for empty request")
	}
	if err := (RegisterCustomerRequest{Name: "Ada", NationalID: "111"}).Validate(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestPostingRequestParsedAmountRejectsOutOfRange(t *testing.T) {
	_, err := PostingRequest{NationalID: "111", Amount: "1e50000000"}.ParsedAmount()
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	amount, err := PostingRequest{NationalID: "111", Amount: " 12.5 "}.ParsedAmount()
	if err != nil || amount.StringFixed(2) != "12.50" {
		t.Fatalf("expected 12.50, got %s (%v)", amount, err)
	}
}
