// ABOUTME: Product management subcommands for scripted catalog access
// ABOUTME: Implements list, get, create, update, delete, and thumbnail operations

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/juliomonteiiro/agenus-admin/internal/catalog"
	"github.com/juliomonteiiro/agenus-admin/internal/client"
	"github.com/juliomonteiiro/agenus-admin/internal/logger"
	"github.com/juliomonteiiro/agenus-admin/internal/storage"
	"github.com/juliomonteiiro/agenus-admin/internal/validate"
	"github.com/spf13/cobra"
)

var (
	listPage     int
	listPageSize int
	listSearch   string
	listSort     string
	listOrder    string
	listStatus   string

	productTitle  string
	productDesc   string
	productStatus string
	productImage  string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage catalog products",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products with optional filtering and sorting",
	Run: func(cmd *cobra.Command, args []string) {
		runExiting(runProductsList)
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product including its thumbnail",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runExiting(func(ctx context.Context, w io.Writer) int {
			return runProductsGet(ctx, w, args[0])
		})
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	Run: func(cmd *cobra.Command, args []string) {
		runExiting(runProductsCreate)
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product's title, description, or status",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runExiting(func(ctx context.Context, w io.Writer) int {
			return runProductsUpdate(ctx, w, args[0])
		})
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runExiting(func(ctx context.Context, w io.Writer) int {
			return runProductsDelete(ctx, w, args[0])
		})
	},
}

var productsThumbnailCmd = &cobra.Command{
	Use:   "thumbnail <id> <image-path>",
	Short: "Replace a product's thumbnail image",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runExiting(func(ctx context.Context, w io.Writer) int {
			return runProductsThumbnail(ctx, w, args[0], args[1])
		})
	},
}

func init() {
	productsListCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	productsListCmd.Flags().IntVar(&listPageSize, "page-size", loadConfig().PageSize, "Items per page")
	productsListCmd.Flags().StringVar(&listSearch, "search", "", "Substring match on title or description")
	productsListCmd.Flags().StringVar(&listSort, "sort", "updatedAt", "Sort field: title, createdAt, updatedAt, status")
	productsListCmd.Flags().StringVar(&listOrder, "order", "desc", "Sort order: asc or desc")
	productsListCmd.Flags().StringVar(&listStatus, "status", "all", "Status filter: all, active, inactive")

	productsCreateCmd.Flags().StringVar(&productTitle, "title", "", "Product title (required)")
	productsCreateCmd.Flags().StringVar(&productDesc, "description", "", "Product description (required)")
	productsCreateCmd.Flags().StringVar(&productImage, "thumbnail", "", "Path to a thumbnail image")
	productsCreateCmd.MarkFlagRequired("title")
	productsCreateCmd.MarkFlagRequired("description")

	productsUpdateCmd.Flags().StringVar(&productTitle, "title", "", "New title")
	productsUpdateCmd.Flags().StringVar(&productDesc, "description", "", "New description")
	productsUpdateCmd.Flags().StringVar(&productStatus, "status", "", "New status: active or inactive")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	productsCmd.AddCommand(productsThumbnailCmd)
	rootCmd.AddCommand(productsCmd)
}

// runExiting wires the signal context and exit code plumbing shared by all
// product subcommands
func runExiting(fn func(ctx context.Context, w io.Writer) int) {
	logger.Init()
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if code := fn(ctx, os.Stdout); code != 0 {
		os.Exit(code)
	}
}

func runProductsList(ctx context.Context, w io.Writer) int {
	store := storage.New(storage.DefaultConfigDir())
	api, _, err := requireSession(store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	filters, err := parseListFilters()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	controller := newController(api)
	controller.SetPage(listPage)
	controller.SetPageSize(listPageSize)

	if filters.IsDefault() {
		if err := controller.FetchProducts(ctx, listPage, listPageSize); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	} else {
		controller.SetSearchQuery(filters.Query)
		controller.SetSortBy(filters.SortBy)
		controller.SetSortOrder(filters.Order)
		controller.SetStatusFilter(filters.Status)
		if err := controller.ApplyFilters(ctx); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	view := controller.Snapshot()
	if IsJSONOutput() {
		fmt.Fprintln(w, formatListJSON(view))
	} else {
		fmt.Fprintln(w, formatListHuman(view))
	}
	return 0
}

func parseListFilters() (catalog.Filters, error) {
	f := catalog.DefaultFilters()
	f.Query = listSearch

	switch listSort {
	case "title":
		f.SortBy = catalog.SortByTitle
	case "createdAt":
		f.SortBy = catalog.SortByCreatedAt
	case "updatedAt":
		f.SortBy = catalog.SortByUpdatedAt
	case "status":
		f.SortBy = catalog.SortByStatus
	default:
		return f, fmt.Errorf("unknown sort field %q", listSort)
	}

	switch listOrder {
	case "asc":
		f.Order = catalog.OrderAsc
	case "desc":
		f.Order = catalog.OrderDesc
	default:
		return f, fmt.Errorf("unknown sort order %q", listOrder)
	}

	switch listStatus {
	case "all":
		f.Status = catalog.StatusAll
	case "active":
		f.Status = catalog.StatusActive
	case "inactive":
		f.Status = catalog.StatusInactive
	default:
		return f, fmt.Errorf("unknown status filter %q", listStatus)
	}

	return f, nil
}

func formatListHuman(view catalog.View) string {
	if len(view.Products) == 0 {
		return "No products found."
	}

	out := fmt.Sprintf("%-38s %-40s %-8s %s\n", "ID", "TITLE", "STATUS", "UPDATED")
	for _, p := range view.Products {
		status := "inactive"
		if p.Status {
			status = "active"
		}
		title := p.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		out += fmt.Sprintf("%-38s %-40s %-8s %s\n", p.ID, title, status, p.UpdatedAt)
	}
	totalPages := view.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	out += fmt.Sprintf("\nPage %d/%d (%d products)", view.Page, totalPages, view.Total)
	return out
}

func formatListJSON(view catalog.View) string {
	payload := map[string]interface{}{
		"data": view.Products,
		"meta": map[string]int{
			"page":       view.Page,
			"pageSize":   view.PageSize,
			"total":      view.Total,
			"totalPages": view.TotalPages,
		},
	}
	data, _ := json.MarshalIndent(payload, "", "  ")
	return string(data)
}

func runProductsGet(ctx context.Context, w io.Writer, id string) int {
	store := storage.New(storage.DefaultConfigDir())
	api, _, err := requireSession(store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	p, err := api.GetProduct(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(p, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	status := "inactive"
	if p.Status {
		status = "active"
	}
	fmt.Fprintf(w, "Title:       %s\n", p.Title)
	fmt.Fprintf(w, "Description: %s\n", p.Description)
	fmt.Fprintf(w, "Status:      %s\n", status)
	fmt.Fprintf(w, "Created:     %s\n", p.CreatedAt)
	fmt.Fprintf(w, "Updated:     %s\n", p.UpdatedAt)
	if p.Thumbnail != nil {
		fmt.Fprintf(w, "Thumbnail:   %s\n", p.Thumbnail.URL)
	}
	return 0
}

func runProductsCreate(ctx context.Context, w io.Writer) int {
	if errs := validate.Product(validate.ProductFields{Title: productTitle, Description: productDesc}); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(w, "Error: %s\n", e.Error())
		}
		return 1
	}

	store := storage.New(storage.DefaultConfigDir())
	api, _, err := requireSession(store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	input := client.CreateProductInput{
		Title:       productTitle,
		Description: productDesc,
	}

	if productImage != "" {
		if err := validate.Thumbnail(productImage); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
		f, err := os.Open(productImage)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		input.Thumbnail = &client.Upload{Filename: productImage, Content: f}
	}

	result, err := api.CreateProduct(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Created product %s\n", result.ID)
	return 0
}

func runProductsUpdate(ctx context.Context, w io.Writer, id string) int {
	store := storage.New(storage.DefaultConfigDir())
	api, _, err := requireSession(store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	// Unspecified fields keep their server-side values
	current, err := api.GetProduct(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	input := client.UpdateProductInput{
		Title:       current.Title,
		Description: current.Description,
		Status:      current.Status,
	}
	if productTitle != "" {
		input.Title = productTitle
	}
	if productDesc != "" {
		input.Description = productDesc
	}
	switch productStatus {
	case "":
	case "active":
		input.Status = true
	case "inactive":
		input.Status = false
	default:
		fmt.Fprintf(w, "Error: unknown status %q\n", productStatus)
		return 1
	}

	if errs := validate.Product(validate.ProductFields{Title: input.Title, Description: input.Description}); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(w, "Error: %s\n", e.Error())
		}
		return 1
	}

	if _, err := api.UpdateProduct(ctx, id, input); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Updated product %s\n", id)
	return 0
}

func runProductsDelete(ctx context.Context, w io.Writer, id string) int {
	store := storage.New(storage.DefaultConfigDir())
	api, _, err := requireSession(store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if _, err := api.DeleteProduct(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Deleted product %s\n", id)
	return 0
}

func runProductsThumbnail(ctx context.Context, w io.Writer, id, path string) int {
	if err := validate.Thumbnail(path); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	store := storage.New(storage.DefaultConfigDir())
	api, _, err := requireSession(store)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}
	defer f.Close()

	if _, err := api.UpdateThumbnail(ctx, id, client.Upload{Filename: path, Content: f}); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Updated thumbnail for product %s\n", id)
	return 0
}
