package cli

import (
	"github.com/spf13/cobra"
)

func newRemoveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <task>...",
		Aliases: []string{"delete"},
		Short:   "Forget tasks",
		Long: `Remove one or more tasks and their history.

Removing a task that does not exist is not an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(o, args)
		},
	}
}

func runRemove(o *options, names []string) error {
	s, err := o.openSession()
	if err != nil {
		return err
	}

	warnMissing(s, names)
	s.tasks.Remove(names...)
	return s.save()
}
