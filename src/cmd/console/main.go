package main

import (
	"context"
	"os"

	"github.com/api-sage/branch-ledger/src/internal/adapter/console"
	"github.com/api-sage/branch-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/branch-ledger/src/internal/logger"
	"github.com/api-sage/branch-ledger/src/internal/usecase/services"
	"go.uber.org/zap/zapcore"
)

func main() {
	// stdout belongs to the menu; only failures reach the log.
	logger.SetOutput(os.Stderr, zapcore.ErrorLevel)
	defer logger.Sync()

	bank := services.NewBankService(memory.NewCustomerRepository(), memory.NewAccountRepository())
	if err := console.NewShell(bank, os.Stdin, os.Stdout).Run(context.Background()); err != nil {
		logger.Error("console session ended", err, nil)
		logger.Sync()
		os.Exit(1)
	}
}
