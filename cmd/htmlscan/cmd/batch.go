package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dpotapov/go-htmlscan"
)

// FileResult is the expression environment for one scanned file. The expr
// tag names are the identifiers available in --filter expressions.
type FileResult struct {
	Path        string `expr:"path"`
	Fallback    bool   `expr:"fallback"`
	Reason      string `expr:"reason"`
	ReasonCode  int    `expr:"reason_code"`
	Booleans    int    `expr:"booleans"`
	SelfClosing int    `expr:"self_closing"`
}

var (
	batchCmd = &cobra.Command{
		Use:   "batch dir",
		Short: "Scan all HTML files under a directory tree and report verdicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Help()
				return errors.New("need to specify argument <dir>")
			}
			dir := args[0]

			cfg, err := LoadConfig(dir)
			if err != nil {
				return err
			}
			filter := batchFilter
			if filter == "" {
				filter = cfg.Filter
			}
			format := batchFormat
			if format == "" && cfg.Format != "" {
				format = cfg.Format
			}
			if format == "" {
				format = "text"
			}

			var prog *vm.Program
			if filter != "" {
				prog, err = expr.Compile(filter, expr.Env(FileResult{}), expr.AsBool())
				if err != nil {
					return fmt.Errorf("compile filter expression: %w", err)
				}
			}

			var results []htmlscan.FileVerdict
			err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				switch strings.ToLower(filepath.Ext(path)) {
				case ".html", ".htm":
				default:
					return nil
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				v := htmlscan.Scan(data)
				logrus.WithFields(logrus.Fields{"path": path, "fallback": v.Fallback}).Debug("scanned")

				if prog != nil {
					keep, err := expr.Run(prog, FileResult{
						Path:        path,
						Fallback:    v.Fallback,
						Reason:      v.Reason.String(),
						ReasonCode:  int(v.Reason),
						Booleans:    len(v.Booleans),
						SelfClosing: len(v.SelfClosing),
					})
					if err != nil {
						return fmt.Errorf("run filter expression: %w", err)
					}
					if !keep.(bool) {
						return nil
					}
				}
				results = append(results, htmlscan.FileVerdict{Path: path, Verdict: v})
				return nil
			})
			if err != nil {
				return err
			}

			switch format {
			case "xml":
				return htmlscan.WriteXMLReport(os.Stdout, results)
			case "text":
				for _, fr := range results {
					if fr.Verdict.Fallback {
						fmt.Printf("%s\tfallback\t%s\n", fr.Path, fr.Verdict.Reason)
					} else {
						fmt.Printf("%s\tfast\t%d boolean hints\n", fr.Path, len(fr.Verdict.Booleans))
					}
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	batchFilter string
	batchFormat string
)

func init() {
	batchCmd.Flags().StringVar(&batchFilter, "filter", "", `filter expression, e.g. 'fallback && reason != "no tag delimiter"'`)
	batchCmd.Flags().StringVar(&batchFormat, "format", "", "report format: text or xml")
	rootCmd.AddCommand(batchCmd)
}
