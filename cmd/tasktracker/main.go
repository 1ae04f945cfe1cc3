package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abatilo/tasktracker/internal/config"
	bitserrors "github.com/abatilo/tasktracker/internal/errors"
	"github.com/abatilo/tasktracker/internal/logging"
	"github.com/abatilo/tasktracker/internal/output"
	"github.com/abatilo/tasktracker/internal/shell"
	"github.com/abatilo/tasktracker/internal/storage"
	"github.com/abatilo/tasktracker/internal/tokenizer"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	configPath string
	taskFile   string
	logLevel   string
	noBanner   bool
	formatter  output.Formatter
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tasktracker [command] [args...]",
		Short: "An interactive, file-based task tracker",
		Long: "tasktracker - An interactive, file-based task tracker.\n\n" +
			"Without arguments it starts an interactive session. With arguments it runs\n" +
			"a single command, for example: tasktracker add \"Buy milk\"",
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			runTracker(cmd, args)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	flags.StringVar(&configPath, "config", "", "Config file (default: .tasktracker.yaml, .yml or .toml in the working directory)")
	flags.StringVarP(&taskFile, "file", "f", config.DefaultFile, "Task file, relative to the working directory")
	flags.StringVar(&logLevel, "log-level", logging.DefaultLevel, "Diagnostic log level")
	rootCmd.Flags().BoolVar(&noBanner, "no-banner", false, "Do not print the welcome banner")

	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stderr.WriteString(formatter.FormatError(err)) //nolint:gosec // stderr write errors are unrecoverable
	os.Exit(1)
}

// loadConfig reads the config file and applies any flags given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(".", configPath)
	if err != nil {
		return nil, startupError{Step: "load config", Err: err}
	}

	if cmd.Flags().Changed("file") {
		cfg.File = taskFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if f := cmd.Flags().Lookup("no-banner"); f != nil && f.Changed {
		cfg.Banner = !noBanner
	}
	return cfg, nil
}

// setup loads configuration and builds the logger and the resolved task
// file path shared by every command.
func setup(cmd *cobra.Command) (*config.Config, *logrus.Logger, string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		printError(err)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		printError(startupError{Step: "configure logging", Err: err})
	}
	if cfg.Source != "" {
		logger.WithField("path", cfg.Source).Debug("Loaded config file")
	}

	path, err := storage.ResolvePath(cfg.File)
	if err != nil {
		printError(startupError{Step: "locate task file", Err: err})
	}
	return cfg, logger, path
}

// runTracker implements the interactive session and one-shot mode.
func runTracker(cmd *cobra.Command, args []string) {
	cfg, logger, path := setup(cmd)

	store, openErr := storage.Open(path, storage.WithLogger(logger))
	var corrupt bitserrors.CorruptFileError
	if openErr != nil && !errors.As(openErr, &corrupt) {
		printError(startupError{Step: "read task file", Err: openErr})
	}

	sh := shell.New(store,
		shell.WithFormatter(formatter),
		shell.WithPrompt(cfg.Prompt),
		shell.WithLogger(logger),
	)
	if openErr != nil {
		sh.Warn(openErr)
		os.Stderr.WriteString(formatter.FormatMessage("Starting with an empty task list.")) //nolint:gosec // stderr write errors are unrecoverable
	}

	if len(args) > 0 {
		logger.WithField("line", tokenizer.Join(args)).Debug("Running one-shot command")
		res, err := sh.Execute(args)
		sh.Render(res, err)
		if err != nil {
			os.Exit(1)
		}
		return
	}

	if cfg.Banner {
		sh.PrintBanner()
	}
	if err := sh.Run(os.Stdin); err != nil {
		printError(startupError{Step: "read input", Err: err})
	}
}

// checkCmd implements 'tasktracker check'.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the task file",
		Long: "Reads the task file the way the tracker does and reports anything it would\n" +
			"reject. Departures from the strict format that are still readable are\n" +
			"listed as warnings.",
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _, path := setup(cmd)

			report, err := storage.Check(path)
			if err != nil {
				printError(err)
			}
			for _, issue := range report.Issues {
				printOutput(formatter.FormatMessage("warning: " + issue.String()))
			}
			printOutput(formatter.FormatMessage(fmt.Sprintf("%s: ok (%d tasks)", report.Path, report.Tasks)))
		},
	}
}
