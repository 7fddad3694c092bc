package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tatran0195/akaw/cmd/root"
	"github.com/tatran0195/akaw/internal/app"
	"github.com/tatran0195/akaw/internal/config"
	"github.com/tatran0195/akaw/internal/logger"
	generalutils "github.com/tatran0195/akaw/utils/general"
	promptutils "github.com/tatran0195/akaw/utils/prompt"
)

func main() {
	if err := run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, home)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.Paths.LogFile)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if created, err := config.WriteDefaults(fs, cfg.Paths); err != nil {
		log.Warn("failed to write default config", zap.String("path", cfg.Paths.AppConfig), zap.Error(err))
	} else if created {
		log.Info("wrote default config", zap.String("path", cfg.Paths.AppConfig))
	}

	rootCmd := root.NewRootCmd(root.RootDependencies{
		Service:        app.New(cfg, fs, log),
		Prompter:       promptutils.NewPrompt(),
		GeneralManager: generalutils.NewGeneralUtilsManager(cfg.AWSCLIPath),
	})
	rootCmd.SilenceErrors = true

	return rootCmd.Execute()
}
