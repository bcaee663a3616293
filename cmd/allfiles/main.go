package main

import (
	"fmt"
	"os"

	"github.com/temirov/allfiles/internal/cli"
	"github.com/temirov/allfiles/internal/config"
	"github.com/temirov/allfiles/internal/utils"
)

// main is the entry point for the allfiles command.
func main() {
	configuration, configurationError := config.LoadApplicationConfiguration()
	if configurationError != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf(utils.ConfigurationLoadFailedMessageFormat, configurationError))
		os.Exit(1)
	}
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(configuration.LogLevel, utils.IsTerminal(os.Stderr))
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance, configuration); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
