package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bennysutils/bennys-utils/pkg/prompt"
)

type askFlags struct {
	options       []string
	caseSensitive bool
	maxAttempts   int
	fail          bool
}

func newAskCmd(a *app) *cobra.Command {
	f := &askFlags{}

	cmd := &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Ask for a line of input until it is one of the allowed options",
		Long: `Ask writes the prompt to stderr and reads answers from stdin. The accepted
answer is printed to stdout. When the attempt budget runs out the command
exits with status 2, or fails with an error when --fail is set.`,
		Example: `  bennys ask "Continue? " -O yes -O no --max-attempts 3`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, a, f, args[0])
		},
	}

	cmd.Flags().StringArrayVarP(&f.options, "option", "O", nil, "Allowed answer (repeatable); none accepts anything")
	cmd.Flags().BoolVar(&f.caseSensitive, "case-sensitive", false, "Compare answers case-sensitively")
	cmd.Flags().IntVarP(&f.maxAttempts, "max-attempts", "n", 0, "Maximum number of answers to read (0 for no limit)")
	cmd.Flags().BoolVar(&f.fail, "fail", false, "Fail with an error instead of returning no value when attempts run out")
	return cmd
}

func runAsk(cmd *cobra.Command, a *app, f *askFlags, text string) error {
	opts := a.cfg.Prompt.PromptOptions(f.options)
	if cmd.Flags().Changed("case-sensitive") {
		opts.CaseSensitive = f.caseSensitive
	}
	if cmd.Flags().Changed("max-attempts") {
		opts.MaxAttempts = f.maxAttempts
	}
	if cmd.Flags().Changed("fail") {
		opts.FailOnExhaust = f.fail
	}

	p := prompt.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()).WithLogger(a.logger)
	value, ok, err := p.Ask(text, opts)
	if err != nil {
		return err
	}
	if !ok {
		return errNoValue
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
