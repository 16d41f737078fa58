package cmd

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dpotapov/go-htmlscan"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the live scan playground over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(".")
			if err != nil {
				return err
			}
			addr := serveAddr
			if addr == "" {
				addr = cfg.Addr
			}
			if addr == "" {
				addr = ":8080"
			}

			h := &htmlscan.PlaygroundHandler{
				Logger:        slog.New(slog.NewTextHandler(os.Stderr, nil)),
				MaxInputBytes: cfg.MaxInputBytes,
			}
			logrus.WithField("addr", addr).Info("serving scan playground")
			return http.ListenAndServe(addr, h)
		},
	}

	serveAddr string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8080)")
	rootCmd.AddCommand(serveCmd)
}
