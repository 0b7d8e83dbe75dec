package domain

import "errors"

var ErrDuplicateCustomer = errors.New("Customer already exists")
var ErrCustomerNotFound = errors.New("Customer not found")
var ErrAccountNotFound = errors.New("Account not found")
var ErrInvalidAmount = errors.New("Invalid amount")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrLimitExceeded = errors.New("Withdrawal amount exceeds limit")
var ErrWithdrawalCountExceeded = errors.New("Withdrawal count exceeded")
var ErrUnknownCommand = errors.New("Unknown command")
