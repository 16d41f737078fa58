package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/dpotapov/go-htmlscan"
	"github.com/dpotapov/go-htmlscan/prescan"
)

var (
	hintsCmd = &cobra.Command{
		Use:   "hints file",
		Short: "Print the self-closing and boolean attribute hints for a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("need to specify argument <file>")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			if hintsDebug {
				repr.Println(htmlscan.Scan(data))
				return nil
			}

			prescan.ScanHints(data,
				func(name []byte, selfClosing bool) {
					fmt.Printf("self-closing\t%s\t%v\n", name, selfClosing)
				},
				func(index int, boolean bool) {
					fmt.Printf("boolean\t%s\t%v\n", prescan.BooleanAttrName(index), boolean)
				})
			return nil
		},
	}

	hintsDebug bool
)

func init() {
	hintsCmd.Flags().BoolVar(&hintsDebug, "debug", false, "dump the full decision-mode verdict")
	rootCmd.AddCommand(hintsCmd)
}
