package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// options carries global flag values and the clock to every command.
type options struct {
	verbose bool
	file    string
	clock   func() time.Time
}

func newRootCmd(version string, o *options) *cobra.Command {
	if o.clock == nil {
		o.clock = time.Now
	}

	rootCmd := &cobra.Command{
		Use:   "loago",
		Short: "loago - how long ago did you last do it?",
		Long: `loago keeps track of when you last did things and how long ago that was.

Mark a task as done with "loago do", see how many days ago each task was
done with "loago view", and forget a task with "loago remove".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), o.verbose)
		},
	}

	rootCmd.SetVersionTemplate("loago {{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "Print version information")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&o.file, "file", "f", "", "Task record file (overrides config and $LOAGO_FILE)")

	rootCmd.AddCommand(newDoCmd(o))
	rootCmd.AddCommand(newViewCmd(o))
	rootCmd.AddCommand(newRemoveCmd(o))
	rootCmd.AddCommand(newConfigCmd(o))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd := newRootCmd(version, &options{})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// setupLogging routes diagnostics to w when verbose and discards them otherwise.
func setupLogging(w io.Writer, verbose bool) {
	log.SetFlags(0)
	log.SetPrefix("loago: ")
	if verbose {
		log.SetOutput(w)
	} else {
		log.SetOutput(io.Discard)
	}
}
