// ABOUTME: Seed command that populates the catalog with generated products
// ABOUTME: Rate-limited concurrent creation for demo and load-testing setups

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/juliomonteiiro/agenus-admin/internal/client"
	"github.com/juliomonteiiro/agenus-admin/internal/logger"
	"github.com/juliomonteiiro/agenus-admin/internal/storage"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var (
	seedCount   int
	seedWorkers int
	seedRate    float64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the catalog with generated products",
	Long: `Create a batch of fake products through the API.

Intended for demo environments and load testing; creation is rate limited
so the API is never hammered.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger.Init()
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if code := runSeed(ctx, os.Stdout); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 25, "Number of products to create")
	seedCmd.Flags().IntVar(&seedWorkers, "workers", 4, "Concurrent creation workers")
	seedCmd.Flags().Float64Var(&seedRate, "rate", 5, "Creations per second across all workers")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(ctx context.Context, w io.Writer) int {
	if seedCount < 1 {
		fmt.Fprintln(w, "Error: --count must be at least 1")
		return 1
	}

	store := storage.New(storage.DefaultConfigDir())
	api, _, err := requireSession(store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	return seedProducts(ctx, api, w)
}

// seedProducts runs the rate-limited creation loop against the given client
func seedProducts(ctx context.Context, api *client.Client, w io.Writer) int {
	if seedWorkers < 1 {
		seedWorkers = 1
	}

	limiter := rate.NewLimiter(rate.Limit(seedRate), 1)
	var created atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(seedWorkers)

	for i := 0; i < seedCount; i++ {
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}

			input := client.CreateProductInput{
				Title:       seedTitle(),
				Description: seedDescription(),
			}
			if _, err := api.CreateProduct(ctx, input); err != nil {
				return fmt.Errorf("create %q: %w", input.Title, err)
			}
			created.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(w, "Error after %d products: %v\n", created.Load(), err)
		return 2
	}

	fmt.Fprintf(w, "Created %d products\n", created.Load())
	return 0
}

// seedTitle generates a product name that passes the title character rules
func seedTitle() string {
	title := fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), gofakeit.ProductName())
	title = sanitizeTitle(title)
	if len(title) > 100 {
		title = title[:100]
	}
	if len(title) < 3 {
		title = "Sample Product"
	}
	return title
}

// seedDescription generates a description within the accepted length bounds
func seedDescription() string {
	desc := gofakeit.ProductDescription()
	for len(desc) < 10 {
		desc += " " + gofakeit.SentenceSimple()
	}
	if len(desc) > 1000 {
		desc = desc[:1000]
	}
	return desc
}

// sanitizeTitle drops characters outside the catalog's allowed title set
func sanitizeTitle(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '.', r == ',', r == '!', r == '?':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
