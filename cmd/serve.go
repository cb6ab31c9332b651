package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mik-tf/mdtodocu/internal/config"
	"github.com/mik-tf/mdtodocu/internal/preview"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <book>",
	Short: "Serve a generated book tree over HTTP for inspection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.PreviewAddr = serveAddr
		}

		dir := cfg.OutputPath(args[0])
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("no generated tree at %s, run convert first", dir)
		}

		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		srv := preview.NewServer(dir, log)

		log.Info("serving preview", "dir", dir, "addr", cfg.PreviewAddr)
		return http.ListenAndServe(cfg.PreviewAddr, srv)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address for the preview server")

	rootCmd.AddCommand(serveCmd)
}
