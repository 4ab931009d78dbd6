// ABOUTME: Catalog controller holding the product list view state
// ABOUTME: Orchestrates fetch-and-locally-refilter cycles against the product API

package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/juliomonteiiro/agenus-admin/internal/cache"
	"github.com/juliomonteiiro/agenus-admin/internal/client"
)

// Modal mode for the create/edit form sub-state
type ModalMode int

const (
	ModalNone ModalMode = iota
	ModalCreate
	ModalEdit
)

// View is a consistent snapshot of the controller state for rendering
type View struct {
	Products       []client.ProductSummary
	CurrentProduct *client.Product
	IsLoading      bool
	Error          string

	Page       int
	PageSize   int
	Total      int
	TotalPages int

	Filters Filters

	ModalMode      ModalMode
	EditingProduct *client.Product
}

const workingSetKey = "working-set"

// Controller is the single writer for the catalog state slice. Fetches run
// on caller goroutines; a generation counter discards responses that were
// superseded by a newer operation so stale data never overwrites state.
type Controller struct {
	api   *client.Client
	cache *cache.Cache

	workingSetLimit int

	mu             sync.Mutex
	generation     uint64
	products       []client.ProductSummary
	currentProduct *client.Product
	isLoading      bool
	lastError      string

	page       int
	pageSize   int
	total      int
	totalPages int

	filters Filters

	modalMode      ModalMode
	editingProduct *client.Product
}

// Option configures a Controller
type Option func(*Controller)

// WithWorkingSetLimit overrides the cap on rows fetched for client-side
// filtering (default 1000)
func WithWorkingSetLimit(limit int) Option {
	return func(c *Controller) {
		if limit > 0 {
			c.workingSetLimit = limit
		}
	}
}

// WithCacheTTL sets how long the dashboard working set stays cached
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Controller) {
		c.cache = cache.New(ttl)
	}
}

// NewController creates a catalog controller bound to the API client
func NewController(api *client.Client, opts ...Option) *Controller {
	c := &Controller{
		api:             api,
		cache:           cache.New(30 * time.Second),
		workingSetLimit: 1000,
		page:            1,
		pageSize:        10,
		filters:         DefaultFilters(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current view state
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	products := make([]client.ProductSummary, len(c.products))
	copy(products, c.products)

	return View{
		Products:       products,
		CurrentProduct: c.currentProduct,
		IsLoading:      c.isLoading,
		Error:          c.lastError,
		Page:           c.page,
		PageSize:       c.pageSize,
		Total:          c.total,
		TotalPages:     c.totalPages,
		Filters:        c.filters,
		ModalMode:      c.modalMode,
		EditingProduct: c.editingProduct,
	}
}

// Error returns the stored request-level error, empty when none
func (c *Controller) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// ClearError drops the stored error
func (c *Controller) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastError = ""
}

// SetSearchQuery mutates the filter state only; callers must run
// ApplyFilters to refresh the list
func (c *Controller) SetSearchQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Query = query
}

// SetSortBy mutates the sort field only
func (c *Controller) SetSortBy(field SortField) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.SortBy = field
}

// SetSortOrder mutates the sort direction only
func (c *Controller) SetSortOrder(order SortOrder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Order = order
}

// SetStatusFilter mutates the status filter only
func (c *Controller) SetStatusFilter(status StatusFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters.Status = status
}

// SetPage moves the pagination cursor without fetching
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page >= 1 {
		c.page = page
	}
}

// SetPageSize changes how many rows each page holds
func (c *Controller) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size >= 1 {
		c.pageSize = size
	}
}

// Filters returns the current filter state
func (c *Controller) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// HasActiveFilters reports whether any filter deviates from the defaults
func (c *Controller) HasActiveFilters() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.filters.IsDefault()
}

// beginOperation marks loading, clears the error, and returns the
// generation token this operation must present to apply its result
func (c *Controller) beginOperation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.isLoading = true
	c.lastError = ""
	return c.generation
}

// fail records an error for the current operation unless superseded
func (c *Controller) fail(gen uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.lastError = friendlyError(err, "something went wrong, try again")
	c.isLoading = false
}

func friendlyError(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

// FetchProducts requests one server-paginated page and replaces the list
// and all pagination descriptors. On failure the previously loaded
// products are preserved.
func (c *Controller) FetchProducts(ctx context.Context, page, pageSize int) error {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	gen := c.beginOperation()

	list, err := c.api.ListProducts(ctx, page, pageSize)
	if err != nil {
		c.fail(gen, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		slog.Debug("Discarding stale product page", "page", page)
		return nil
	}
	c.products = list.Data
	c.page = clampPage(list.Meta.Page, list.Meta.TotalPages)
	c.pageSize = list.Meta.PageSize
	c.total = list.Meta.Total
	c.totalPages = list.Meta.TotalPages
	c.isLoading = false
	return nil
}

// FetchProduct loads one full product (including thumbnail) as the
// current product, independent of the list page
func (c *Controller) FetchProduct(ctx context.Context, id string) error {
	gen := c.beginOperation()

	p, err := c.api.GetProduct(ctx, id)
	if err != nil {
		c.fail(gen, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return nil
	}
	c.currentProduct = p
	c.isLoading = false
	return nil
}

// CreateProduct submits a new product; on success the current page is
// re-fetched so totals and ordering stay authoritative from the server.
// Never panics or returns an error to the caller: failures land in Error().
func (c *Controller) CreateProduct(ctx context.Context, input client.CreateProductInput) bool {
	gen := c.beginOperation()

	if _, err := c.api.CreateProduct(ctx, input); err != nil {
		c.fail(gen, err)
		return false
	}
	c.cache.Clear(workingSetKey)

	page, pageSize := c.currentPageSize()
	if err := c.FetchProducts(ctx, page, pageSize); err != nil {
		return false
	}
	return true
}

// UpdateProduct submits field changes; on success the current page is
// re-fetched
func (c *Controller) UpdateProduct(ctx context.Context, id string, input client.UpdateProductInput) bool {
	gen := c.beginOperation()

	if _, err := c.api.UpdateProduct(ctx, id, input); err != nil {
		c.fail(gen, err)
		return false
	}
	c.cache.Clear(workingSetKey)

	page, pageSize := c.currentPageSize()
	if err := c.FetchProducts(ctx, page, pageSize); err != nil {
		return false
	}
	return true
}

// UpdateThumbnail replaces a product's image only. Refreshes the current
// product when it matches, then re-fetches the page.
func (c *Controller) UpdateThumbnail(ctx context.Context, id string, thumbnail client.Upload) bool {
	gen := c.beginOperation()

	if _, err := c.api.UpdateThumbnail(ctx, id, thumbnail); err != nil {
		c.fail(gen, err)
		return false
	}
	c.cache.Clear(workingSetKey)

	c.mu.Lock()
	matchesCurrent := c.currentProduct != nil && c.currentProduct.ID == id
	c.mu.Unlock()
	if matchesCurrent {
		if err := c.FetchProduct(ctx, id); err != nil {
			return false
		}
	}

	page, pageSize := c.currentPageSize()
	if err := c.FetchProducts(ctx, page, pageSize); err != nil {
		return false
	}
	return true
}

// DeleteProduct removes the item optimistically: the local list entry is
// dropped and total decremented without a re-fetch. A caller deleting the
// last item of a page beyond 1 is responsible for fetching the prior page.
func (c *Controller) DeleteProduct(ctx context.Context, id string) bool {
	gen := c.beginOperation()

	if _, err := c.api.DeleteProduct(ctx, id); err != nil {
		c.fail(gen, err)
		return false
	}
	c.cache.Clear(workingSetKey)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return true
	}
	kept := c.products[:0]
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	c.total--
	c.isLoading = false
	return true
}

// ApplyFilters fetches a bounded working set and rebuilds the visible page
// entirely client-side: substring search, status filter, sort, then local
// pagination. Totals are recomputed from the filtered count, not the
// server's unfiltered total.
func (c *Controller) ApplyFilters(ctx context.Context) error {
	gen := c.beginOperation()

	list, err := c.api.ListProducts(ctx, 1, c.workingSetLimit)
	if err != nil {
		c.fail(gen, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		slog.Debug("Discarding stale filtered working set")
		return nil
	}

	filtered := Apply(list.Data, c.filters)
	c.total = len(filtered)
	c.totalPages = TotalPages(c.total, c.pageSize)
	c.page = clampPage(c.page, c.totalPages)
	c.products = Paginate(filtered, c.page, c.pageSize)
	c.isLoading = false
	return nil
}

// ClearFilters resets all filter/sort state to the defaults and performs a
// fresh server-side fetch, discarding any local filtered view
func (c *Controller) ClearFilters(ctx context.Context) error {
	c.mu.Lock()
	c.filters = DefaultFilters()
	c.page = 1
	pageSize := c.pageSize
	c.mu.Unlock()

	return c.FetchProducts(ctx, 1, pageSize)
}

// WorkingSet returns the bounded product batch used for dashboard
// aggregation, served from a short-lived cache
func (c *Controller) WorkingSet(ctx context.Context) ([]client.ProductSummary, error) {
	if cached, ok := c.cache.Get(workingSetKey); ok {
		return cached.([]client.ProductSummary), nil
	}

	list, err := c.api.ListProducts(ctx, 1, c.workingSetLimit)
	if err != nil {
		return nil, err
	}
	c.cache.Set(workingSetKey, list.Data)
	return list.Data, nil
}

// OpenCreateModal enters create mode and clears any previous error
func (c *Controller) OpenCreateModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modalMode = ModalCreate
	c.editingProduct = nil
	c.lastError = ""
}

// OpenEditModal enters edit mode for the given product
func (c *Controller) OpenEditModal(p *client.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modalMode = ModalEdit
	c.editingProduct = p
	c.lastError = ""
}

// CloseModal clears mode, product reference, and error together
func (c *Controller) CloseModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modalMode = ModalNone
	c.editingProduct = nil
	c.lastError = ""
}

// Reset restores the controller to its initial state
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.products = nil
	c.currentProduct = nil
	c.isLoading = false
	c.lastError = ""
	c.page = 1
	c.total = 0
	c.totalPages = 0
	c.filters = DefaultFilters()
	c.modalMode = ModalNone
	c.editingProduct = nil
	c.cache.Clear(workingSetKey)
}

func (c *Controller) currentPageSize() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page, c.pageSize
}

// clampPage keeps the cursor inside [1, max(totalPages, 1)]
func clampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
