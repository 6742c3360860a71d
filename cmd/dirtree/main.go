package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/temirov/dirtree/internal/cli"
	"github.com/temirov/dirtree/internal/utils"
)

// main is the entry point for the dirtree command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(utils.LoggerOptions{})
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer func() { _ = loggerInstance.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	applicationExecutionError := cli.Execute(ctx)
	stop()
	if applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
