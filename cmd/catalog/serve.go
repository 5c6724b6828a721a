package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/catalog/internal/imagecheck"
	"github.com/nikbrunner/catalog/internal/logger"
	"github.com/nikbrunner/catalog/internal/server"
	"github.com/nikbrunner/catalog/internal/storage"
)

const shutdownTimeout = 10 * time.Second

var (
	serveListenFlag      string
	serveCheckImagesFlag bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog page over HTTP",
	Long: `Load the products once and serve the catalog page.

Routes:
  GET /          the page; ?q=<term>&sort=<key>
  GET /db.json   the loaded products
  GET /healthz   load status
  GET /metrics   prometheus metrics

A load failure keeps the server running; every page shows the error row.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListenFlag, "listen", "", "listen address (default from config, :8080)")
	serveCmd.Flags().BoolVar(&serveCheckImagesFlag, "check-images", false, "probe thumbnails at startup")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := rootCtx
	log := logger.FromContext(ctx)

	addr := cfg.Listen
	if serveListenFlag != "" {
		addr = serveListenFlag
	}

	src, err := openSource()
	if err != nil {
		return err
	}

	params := server.Params{
		Source:      src,
		Placeholder: cfg.PlaceholderImage,
	}
	if serveCheckImagesFlag || cfg.ImageCheck.Enabled {
		params.ImageCheck = &imagecheck.Params{
			Concurrency: cfg.ImageCheck.Concurrency,
			Timeout:     cfg.ImageCheck.Timeout,
		}
	}

	srv := server.New(ctx, params)
	// Products are loaded once; the source is not needed afterwards.
	_ = storage.CloseSource(src)

	log.Info("catalog loaded", "addr", addr, "source", cfg.Source, "products", len(srv.Products()))
	return server.Run(ctx, server.NewHTTPServer(addr, srv.Handler()), shutdownTimeout)
}
