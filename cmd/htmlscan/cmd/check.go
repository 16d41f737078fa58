package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpotapov/go-htmlscan/prescan"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check file...",
		Short: "Decide for each file whether it needs the conformant HTML5 parser",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New("need at least one file argument")
			}
			anyFallback := false
			for _, name := range args {
				data, err := os.ReadFile(name)
				if err != nil {
					return err
				}
				fallback, reason := prescan.ShouldFallback(data, nil, nil)
				if fallback {
					anyFallback = true
					fmt.Printf("%s: fallback (%s)\n", name, reason)
				} else {
					fmt.Printf("%s: fast path\n", name)
				}
			}
			if anyFallback {
				return errors.New("some files need the conformant parser")
			}
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(checkCmd)
}
