package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fenilsonani/cleantemp/internal/cleaner"
	"github.com/fenilsonani/cleantemp/internal/config"
	"github.com/fenilsonani/cleantemp/internal/logging"
	"github.com/fenilsonani/cleantemp/internal/platform"
	"github.com/fenilsonani/cleantemp/internal/reporter"
	"github.com/fenilsonani/cleantemp/internal/scanner"
	"github.com/fenilsonani/cleantemp/internal/session"
	"github.com/fenilsonani/cleantemp/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var (
	configPath string
	verbose    bool
	dryRun     bool
	force      bool
	sortKey    string
	reverse    bool
	outputFmt  string
	outputFile string
	initConfig bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cleantemp",
	Short: "Inspect and clear the temp directory",
	Long: `cleantemp lists every file in the operating system's temp directory with its
size and creation date, and deletes them all once you confirm.

Run without a subcommand in a terminal to open the interactive browser.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
			return cmd.Help()
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyDryRunFlag(cmd, cfg)

		// stderr belongs to the TUI, so only an explicit log file is written
		logger := logging.Nop()
		if cfg.Log.File != "" {
			if logger, err = newLogger(cfg); err != nil {
				return err
			}
		}
		defer logger.Sync()

		sess, err := newSession(cfg, logger)
		if err != nil {
			return err
		}

		return ui.RunInteractive(sess, cfg.DryRun)
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the files in the temp directory",
	Long:  `Scans the temp directory and reports what it holds without making any changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := applyScanFlags(cmd, cfg); err != nil {
			return err
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		result, err := scanner.New(logger).ScanTemp(platform.GetInfo())
		if err != nil {
			return err
		}

		state, err := sortState(cfg)
		if err != nil {
			return err
		}
		scanner.Sort(result.Records, state)

		format, err := reporter.ParseFormat(cfg.Output)
		if err != nil {
			return err
		}

		if outputFile != "" {
			if err := reporter.SaveToFile(result, outputFile, format); err != nil {
				return fmt.Errorf("failed to save report: %w", err)
			}
			fmt.Printf("Report saved to: %s\n", outputFile)
			return nil
		}

		if err := reporter.New(os.Stdout, format).Report(result); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		return nil
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete every file in the temp directory",
	Long: `Scans the temp directory, shows a summary and, after confirmation, deletes
every file found. Files that cannot be deleted are reported and left in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyDryRunFlag(cmd, cfg)

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		sess, err := newSession(cfg, logger)
		if err != nil {
			return err
		}

		fmt.Println("Scanning temp directory...")
		result, err := sess.Scan()
		if err != nil {
			return err
		}

		if result.TotalCount == 0 {
			fmt.Println("\n✨ No temp files found. Nothing to clean.")
			return nil
		}

		rptr := reporter.New(os.Stdout, reporter.FormatSummary)
		if err := rptr.Report(result); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		if !force && cfg.Confirm && !cfg.DryRun {
			if !isTerminal(os.Stdin) {
				return errors.New("refusing to delete without confirmation: stdin is not a terminal (use --force)")
			}
			question := fmt.Sprintf("\nDelete all %d files? (y/N): ", result.TotalCount)
			if !confirm(os.Stdin, os.Stdout, question) {
				fmt.Println("Cleanup cancelled")
				return nil
			}
		}

		if cfg.DryRun {
			fmt.Println("\n[DRY RUN MODE] No files will be deleted.")
		} else {
			fmt.Println("\nCleaning...")
		}

		deleteResult, err := sess.Delete()
		if err != nil {
			return fmt.Errorf("clean failed: %w", err)
		}

		fmt.Println()
		if err := rptr.ReportDelete(deleteResult); err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}

		if n := len(deleteResult.Failures); n > 0 {
			return fmt.Errorf("%d files could not be deleted", n)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display configuration and the resolved temp directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath := configPath
		if cfgPath == "" {
			var err error
			if initConfig {
				cfgPath, err = config.EnsureConfigExists()
			} else {
				cfgPath, err = config.GetConfigPath()
			}
			if err != nil {
				return err
			}
		} else if initConfig {
			if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
				if err := config.Save(config.GetDefault(), cfgPath); err != nil {
					return err
				}
			}
		}

		fmt.Printf("Config file: %s\n", cfgPath)
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			fmt.Println("Config file does not exist. Using default configuration.")
			fmt.Println("\nRun `cleantemp config --init` to create one, for example:")
			fmt.Println()
			fmt.Print(config.GetExampleConfig())
			fmt.Println()
		}

		info := platform.GetInfo()
		fmt.Printf("Platform: %s\n", info.OS)
		fmt.Printf("Temp directory: %s (from $%s, fallback %s)\n", info.TempDir, info.TempEnvVar, info.TempFallback)

		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	// Interactive mode flags
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "browse and delete without removing any file")

	// Scan command flags
	scanCmd.Flags().StringVar(&outputFmt, "output", "", "output format (summary, table, json, yaml)")
	scanCmd.Flags().StringVar(&sortKey, "sort", "", "sort by name, size or date")
	scanCmd.Flags().BoolVar(&reverse, "reverse", false, "sort in descending order")
	scanCmd.Flags().StringVar(&outputFile, "file", "", "save report to file")

	// Clean command flags
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be deleted without actually deleting")
	cleanCmd.Flags().BoolVar(&force, "force", false, "skip confirmation prompt")

	// Config command flags
	configCmd.Flags().BoolVar(&initConfig, "init", false, "write a default config file if none exists")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	cfgPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	return config.Load(cfgPath)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	return logger, nil
}

func newSession(cfg *config.Config, logger *zap.Logger) (*session.Session, error) {
	info := platform.GetInfo()

	state, err := sortState(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug("temp directory resolved",
		zap.String("dir", info.TempDir),
		zap.String("env", info.TempEnvVar),
	)

	return session.New(info.TempDir, scanner.New(logger), cleaner.New(cfg, logger), state, logger), nil
}

func applyScanFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("sort") {
		key, err := scanner.ParseSortKey(sortKey)
		if err != nil {
			return err
		}
		cfg.Sort.Key = key.String()
	}
	if cmd.Flags().Changed("reverse") {
		cfg.Sort.Descending = reverse
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputFmt
	}
	return nil
}

// applyDryRunFlag lets an explicit --dry-run, true or false, override the config
func applyDryRunFlag(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = dryRun
	}
}

func sortState(cfg *config.Config) (scanner.SortState, error) {
	key, err := scanner.ParseSortKey(cfg.Sort.Key)
	if err != nil {
		return scanner.SortState{}, err
	}
	return scanner.SortState{Key: key, Descending: cfg.Sort.Descending}, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
