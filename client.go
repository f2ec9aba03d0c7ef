// Package cartwise embeds the catalog services behind a Go client, for
// tools and tests that want direct record-store access without the HTTP
// server in between.
package cartwise

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cartwise/cartwise/internal/db"
	dbRedis "github.com/cartwise/cartwise/internal/db/redis"
	catalogrepo "github.com/cartwise/cartwise/internal/repository/catalog"
	cataloguc "github.com/cartwise/cartwise/internal/usecase/catalog"
	searchuc "github.com/cartwise/cartwise/internal/usecase/search"
	seeduc "github.com/cartwise/cartwise/internal/usecase/seed"
	storeviewuc "github.com/cartwise/cartwise/internal/usecase/storeview"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "cartwise:"
)

// Client is the cartwise SDK entry point.
type Client struct {
	store     db.Store
	catalog   *cataloguc.Service
	storeview *storeviewuc.Service
	search    *searchuc.Service
	seed      *seeduc.Service
}

type clientConfig struct {
	addrs     []string
	username  string
	password  string
	database  int
	keyPrefix string
}

// Option configures the client.
type Option func(*clientConfig)

// WithRedis sets the Redis address and password.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithUsername sets the Redis ACL username.
func WithUsername(username string) Option {
	return func(c *clientConfig) {
		c.username = username
	}
}

// WithDatabase selects a Redis logical database.
func WithDatabase(n int) Option {
	return func(c *clientConfig) {
		c.database = n
	}
}

// WithKeyPrefix overrides the record key namespace.
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}

// New creates a cartwise Client and connects to the record store.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("cartwise: record store address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.database,
	})
	if err != nil {
		return nil, fmt.Errorf("cartwise: create store client: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("cartwise: record store not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	repo := catalogrepo.New(store, cfg.keyPrefix)
	return &Client{
		store:     store,
		catalog:   cataloguc.New(repo),
		storeview: storeviewuc.New(repo),
		search:    searchuc.New(repo),
		seed:      seeduc.New(repo),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks record store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// CreateStore creates a store.
func (c *Client) CreateStore(ctx context.Context, name, address, layoutMap string) (Store, error) {
	st, err := c.catalog.CreateStore(ctx, name, address, layoutMap)
	if err != nil {
		return Store{}, err
	}
	return fromDomainStore(st), nil
}

// Stores lists every store.
func (c *Client) Stores(ctx context.Context) ([]Store, error) {
	stores, err := c.catalog.ListStores(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Store, len(stores))
	for i, st := range stores {
		out[i] = fromDomainStore(st)
	}
	return out, nil
}

// StoreView returns the aggregated view of one store.
func (c *Client) StoreView(ctx context.Context, storeID string) (StoreView, error) {
	view, err := c.storeview.Get(ctx, storeID)
	if err != nil {
		return StoreView{}, err
	}
	return fromDomainView(view), nil
}

// CreateSection creates a section within a store.
func (c *Client) CreateSection(ctx context.Context, storeID, name, color, mapElementID string) (Section, error) {
	sec, err := c.catalog.CreateSection(ctx, storeID, name, color, mapElementID)
	if err != nil {
		return Section{}, err
	}
	return fromDomainSection(sec), nil
}

// CreateCategory creates a category within a section.
func (c *Client) CreateCategory(ctx context.Context, storeID, sectionID, name, color string) (Category, error) {
	cat, err := c.catalog.CreateCategory(ctx, storeID, sectionID, name, color)
	if err != nil {
		return Category{}, err
	}
	return fromDomainCategory(cat), nil
}

// CreateProduct creates a product within a category.
func (c *Client) CreateProduct(
	ctx context.Context, categoryID, sectionID, name string, price float64, description string,
) (Product, error) {
	p, err := c.catalog.CreateProduct(ctx, categoryID, sectionID, name, price, description)
	if err != nil {
		return Product{}, err
	}
	return fromDomainProduct(p), nil
}

// Product returns a product by id.
func (c *Client) Product(ctx context.Context, id string) (Product, error) {
	p, err := c.catalog.GetProduct(ctx, id)
	if err != nil {
		return Product{}, err
	}
	return fromDomainProduct(p), nil
}

// ProductsByCategory lists a category's products.
func (c *Client) ProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	products, err := c.catalog.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return fromDomainProducts(products), nil
}

// SearchProducts matches products by name, case-insensitively.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	products, err := c.search.Products(ctx, query)
	if err != nil {
		return nil, err
	}
	return fromDomainProducts(products), nil
}

// InitializeSampleData wipes the catalog and loads the demo supermarket.
func (c *Client) InitializeSampleData(ctx context.Context) (SeedSummary, error) {
	res, err := c.seed.Run(ctx)
	if err != nil {
		return SeedSummary{}, err
	}
	return SeedSummary{
		StoreID:    res.StoreID,
		Sections:   res.Sections,
		Categories: res.Categories,
		Products:   res.Products,
	}, nil
}
