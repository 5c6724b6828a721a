package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/catalog/internal/imagecheck"
)

var (
	checkConcurrencyFlag int
	checkTimeoutFlag     time.Duration
)

var checkImagesCmd = &cobra.Command{
	Use:   "check-images",
	Short: "Report products whose thumbnail cannot be loaded",
	Long: `Probe every product thumbnail (HEAD, falling back to GET) and list
the ones that are broken or unreachable. Products without a thumbnail
are skipped; they already render the placeholder.`,
	Args: cobra.NoArgs,
	RunE: runCheckImages,
}

func init() {
	checkImagesCmd.Flags().IntVar(&checkConcurrencyFlag, "concurrency", 0, "parallel requests (default from config)")
	checkImagesCmd.Flags().DurationVar(&checkTimeoutFlag, "timeout", 0, "per-request timeout (default from config)")
}

func runCheckImages(cmd *cobra.Command, _ []string) error {
	ctx := rootCtx
	cat, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	params := imagecheck.Params{
		Concurrency: cfg.ImageCheck.Concurrency,
		Timeout:     cfg.ImageCheck.Timeout,
		OnProgress: func(completed, total int) {
			fmt.Fprintf(cmd.ErrOrStderr(), "\rChecking %d/%d", completed, total)
		},
	}
	if checkConcurrencyFlag > 0 {
		params.Concurrency = checkConcurrencyFlag
	}
	if checkTimeoutFlag > 0 {
		params.Timeout = checkTimeoutFlag
	}

	results := imagecheck.CheckImages(ctx, cat.Products, params)
	if len(results) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	out := cmd.OutOrStdout()
	counts := make(map[imagecheck.Status]int)
	for _, r := range results {
		counts[r.Status]++
		switch r.Status {
		case imagecheck.Broken:
			fmt.Fprintf(out, "#%s  %s  %s (%d)\n", r.ProductID, r.URL, r.Status, r.StatusCode)
		case imagecheck.Unreachable:
			fmt.Fprintf(out, "#%s  %s  %s: %s\n", r.ProductID, r.URL, r.Status, r.Error)
		}
	}

	fmt.Fprintf(out, "%d healthy, %d broken, %d unreachable, %d skipped\n",
		counts[imagecheck.Healthy], counts[imagecheck.Broken],
		counts[imagecheck.Unreachable], counts[imagecheck.Skipped])
	return nil
}
