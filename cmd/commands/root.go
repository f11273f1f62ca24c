package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gi4nks/wrap-pkg-config/internal/logging"
	"github.com/gi4nks/wrap-pkg-config/internal/pkgconfig"
	"github.com/gi4nks/wrap-pkg-config/internal/utils"
)

// RootCommand runs the tool with every argument it receives and prints the
// inverted exit status.
type RootCommand struct {
	*BaseCommand
}

// NewRootCommand creates the root command. It owns no flags, so flag parsing
// is disabled and arguments reach the tool untouched.
func NewRootCommand(logger *zap.Logger, invoker *pkgconfig.Invoker) *RootCommand {
	rc := &RootCommand{}

	cmd := &cobra.Command{
		Use:   "wrap-pkg-config [pkg-config arguments...]",
		Short: "Run pkg-config and print its inverted exit status",
		Long: `wrap-pkg-config runs pkg-config with the given arguments and prints 1 when
it succeeds and 0 when it fails. On Windows pkg-config is not run and 0 is
printed. Another executable can be named with WRAP_PKG_CONFIG_TOOL.

Examples:
  wrap-pkg-config --exists zlib          # 1 if zlib is known to pkg-config
  wrap-pkg-config --atleast-version 1.2 zlib`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:               rc.runE,
	}

	rc.BaseCommand = NewBaseCommand(cmd, logger, invoker)
	return rc
}

func (rc *RootCommand) runE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rc.logger.Debug("Root command invoked", zap.Strings(logging.FieldKeyArgs, args))

	result, err := rc.invoker.Probe(ctx, args)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

// Execute loads the configuration, wires the invoker and runs the root
// command with args. The result line goes to stdout, which the tool shares
// with stderr. The returned error is fatal; a printed result of 0 is not an
// error.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	config := utils.NewConfiguration()

	logger := initLogger(config)
	defer func() { _ = logger.Sync() }()

	for _, problem := range config.Problems() {
		logger.Warn("Using default configuration value", zap.Error(problem))
	}

	logger.Debug("Starting",
		zap.String("version", Version),
		zap.String("gitCommit", GitCommit),
		zap.String("buildDate", BuildDate),
		zap.String("goVersion", GoVersion),
		zap.String("config", config.String()))

	runner := pkgconfig.NewExecRunner(logger)
	runner.Stdout = stdout
	runner.Stderr = stderr
	invoker := pkgconfig.NewInvoker(logger, config, runner)

	rc := NewRootCommand(logger.With(zap.String(logging.FieldKeyComponent, logging.ComponentCLI)), invoker)
	rc.cmd.SetOut(stdout)
	rc.cmd.SetErr(stderr)

	return run(ctx, rc, args)
}

func run(ctx context.Context, rc *RootCommand, args []string) error {
	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}
	rc.cmd.SetArgs(args)
	return rc.cmd.ExecuteContext(ctx)
}

func initLogger(config *utils.Configuration) *zap.Logger {
	cfg := logging.Config{Level: config.LogLevel}
	if config.DebugMode {
		cfg.Level = "debug"
		cfg.DevMode = true
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
