package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "htmlscan",
		Short:        "htmlscan",
		SilenceUsage: true,
		Long: `Fast-path pre-scanner for HTML documents: decides whether a document is
simple enough for a lightweight parser or needs a conformant HTML5 parser,
and reports the self-closing and boolean attribute hints gathered on the way.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	verbose bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return rootCmd.Execute()
}
