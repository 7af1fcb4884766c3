package cli

import (
	"github.com/spf13/cobra"
)

func newDoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "do <task>...",
		Aliases: []string{"add", "new", "update", "reset"},
		Short:   "Mark tasks as done now",
		Long: `Mark one or more tasks as done right now.

Tasks that do not exist yet are created. All tasks given in one call get
the same timestamp.`,
		Example: "  loago do vacuum dust",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDo(o, args)
		},
	}
}

func runDo(o *options, names []string) error {
	if err := validateNames(names); err != nil {
		return err
	}

	s, err := o.openSession()
	if err != nil {
		return err
	}

	s.tasks.Update(names...)
	return s.save()
}
