package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/core/domain"
)

func (c *CLI) runScript(cmd *cobra.Command, script string, args []string) error {
	synthesize, _ := cmd.Flags().GetBool("main")
	lang, _ := cmd.Flags().GetString("lang")

	opts := app.RunOptions{
		Mode:      domain.ModeRaw,
		Toolchain: lang,
	}
	if synthesize {
		opts.Mode = domain.ModeMainSynthesis
	}

	term, err := c.app.Run(cmd.Context(), script, args, opts)
	c.exitCode = term.Code
	return err
}
