// cmd/codearea/main.go
package main

import (
	"io"
	stlog "log" // standard log for errors before the logger is ready
	"os"

	"github.com/mvetter/codearea/internal/app"
	"github.com/mvetter/codearea/internal/config"
	"github.com/mvetter/codearea/internal/logger"
)

func main() {
	var flags config.Flags
	args := flags.ParseFlags()

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, err := config.Load(*flags.ConfigFilePath, &flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// The widget owns the terminal, so logs go to a file or nowhere.
	var logWriter io.Writer = io.Discard
	if cfg.Logger.LogFilePath != "" {
		logFile, err := os.OpenFile(cfg.Logger.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file %q: %v", cfg.Logger.LogFilePath, err)
		}
		defer logFile.Close()
		logWriter = logFile
	}
	logger.Init(logger.ParseLevel(cfg.Logger.LogLevel), logWriter)

	logger.Infof("starting codearea")
	for _, key := range cfg.UndecodedKeys() {
		logger.Warnf("config: unknown key %q ignored", key)
	}
	if filePath == "" {
		logger.Debugf("no file specified, starting empty")
	}

	editor, err := app.New(cfg, filePath)
	if err != nil {
		stlog.Fatalf("Failed to initialize: %v", err)
	}
	if err := editor.Run(); err != nil {
		logger.Errorf("exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("codearea finished")
}
