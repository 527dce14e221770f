package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "workshop",
	Short: "Back office of an automotive repair workshop",
	Long: `Workshop keeps the mechanics and their contracts, bills finished work
orders and generates the monthly payrolls of the staff.`,
	SilenceUsage:      true,
	PersistentPreRunE: bindFlags,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default workshop.yaml or workshop.toml)")
	flags.String("roster", "", "TOML roster of mechanics and contracts")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("log-format", "", "text or json")
}

// bindFlags binds the persistent flags to the global viper on every run, so
// that a viper.Reset between runs keeps them.
func bindFlags(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	return errors.Join(
		viper.BindPFlag("roster.file", flags.Lookup("roster")),
		viper.BindPFlag("log.level", flags.Lookup("log-level")),
		viper.BindPFlag("log.format", flags.Lookup("log-format")),
	)
}

// bootstrap builds the composition root from the configuration and seeds the
// roster. The returned func closes the database.
func bootstrap(cmd *cobra.Command) (*CompositionRoot, func(), error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(viper.GetViper(), configFile)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	db, err := openDatabase(cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := closeDatabase(db); err != nil {
			logger.Error("Closing database failed", "error", err)
		}
	}

	root, err := NewCompositionRoot(cfg, db, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	if cfg.Roster.File != "" {
		if _, err = root.SeedRoster(cmd.Context(), cfg.Roster.File); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	return root, cleanup, nil
}
