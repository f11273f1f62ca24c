package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gi4nks/wrap-pkg-config/internal/pkgconfig"
)

// BaseCommand is the base structure for all commands
type BaseCommand struct {
	cmd     *cobra.Command
	logger  *zap.Logger
	invoker *pkgconfig.Invoker
}

// NewBaseCommand creates a new base command with an invoker
func NewBaseCommand(cmd *cobra.Command, logger *zap.Logger, invoker *pkgconfig.Invoker) *BaseCommand {
	return &BaseCommand{
		cmd:     cmd,
		logger:  logger,
		invoker: invoker,
	}
}

// Command returns the cobra command
func (bc *BaseCommand) Command() *cobra.Command {
	return bc.cmd
}

// Invoker returns the tool invoker
func (bc *BaseCommand) Invoker() *pkgconfig.Invoker {
	return bc.invoker
}
