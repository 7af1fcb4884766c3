package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/loago/loago/internal/tasks"
)

func newViewCmd(o *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "view [task]...",
		Aliases: []string{"list", "look", "see"},
		Short:   "Show how long ago tasks were done",
		Long: `Show how long ago each task was last done, most recent first.

Without arguments every task is shown. Tasks that do not exist are skipped.
By default elapsed time is shown in days, or as hours (5h) and minutes (12m)
for tasks done within the last day.`,
		Example: "  loago view\n  loago view floor bed keyboard\n  loago view --format hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(o, cmd.OutOrStdout(), format, args)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Elapsed time unit: auto, days, hours or minutes (default from config)")

	return cmd
}

func runView(o *options, w io.Writer, format string, names []string) error {
	s, err := o.openSession()
	if err != nil {
		return err
	}

	if format == "" {
		format = s.cfg.View.Format
	}
	formatter, err := tasks.FormatterFor(format)
	if err != nil {
		return err
	}

	records := s.tasks.All()
	if len(names) > 0 {
		warnMissing(s, names)
		records = s.tasks.Get(names...)
	}

	_, err = fmt.Fprint(w, tasks.Render(records, s.tasks.Now(), formatter))
	return err
}
