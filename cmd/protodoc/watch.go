package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/platinummonkey/protodoc/pkg/compiler"
)

var flagDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [flags] files...",
	Short: "Generate documentation and regenerate on proto changes",
	Args:  cobra.ArbitraryArgs,
	RunE:  runWatch,
}

func init() {
	addGenerateFlags(watchCmd)
	watchCmd.Flags().DurationVar(&flagDebounce, "debounce", 2*time.Second, "quiet period after a change before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd, args)
	if err != nil {
		return err
	}

	// Initial run; watch only reacts to subsequent edits.
	if err := generate(cmd.Context(), opts); err != nil {
		return err
	}

	return compiler.Watch(cmd.Context(), opts.ImportPaths, flagDebounce, log, func() error {
		return generate(cmd.Context(), opts)
	})
}
