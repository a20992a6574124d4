// Package app is the single wiring point: configuration, storage, the
// remote client, the state store, selectors and features are constructed
// here and nowhere else. Nothing in this repository reaches for a global.
package app

import (
	"context"

	sdkapp "github.com/go-faster/sdk/app"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/marketfy/storefront/internal/api"
	"github.com/marketfy/storefront/internal/domain/catalog"
	"github.com/marketfy/storefront/internal/feature"
	"github.com/marketfy/storefront/internal/storage"
	"github.com/marketfy/storefront/internal/store"
)

// App bundles the constructed object graph.
type App struct {
	Store     *store.Store
	Selectors *store.Selectors
	Client    *api.Client

	Auth     *feature.Auth
	Cart     *feature.Cart
	Wishlist *feature.Wishlist
	Products *feature.Products
	Checkout *feature.Checkout
	Toast    *feature.Toast
}

// New builds the full object graph. nav may be nil for headless runs; tp
// may be nil to disable tracing.
//
// The remote client's callbacks target the store and the auth feature,
// both of which need the client first. The cycle is broken with late-bound
// closures: the client is constructed against indirections that are filled
// in once the rest of the graph exists.
func New(ctx context.Context, lg *zap.Logger, tp trace.TracerProvider, cfg *Config, nav feature.Navigator) *App {
	fileStore := storage.NewFileStore(cfg.DataDir, lg)

	var (
		onLoading      func(bool)
		onError        func(string)
		onUnauthorized func()
	)
	client := api.NewClient(api.Options{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Token: func() string {
			return fileStore.GetString(storage.KeyToken)
		},
		OnLoading: func(busy bool) {
			if onLoading != nil {
				onLoading(busy)
			}
		},
		OnError: func(msg string) {
			if onError != nil {
				onError(msg)
			}
		},
		OnUnauthorized: func() {
			if onUnauthorized != nil {
				onUnauthorized()
			}
		},
		Store:          fileStore,
		TracerProvider: tp,
		Logger:         lg,
	})

	authSvc := api.NewAuthService(client, fileStore)
	st := store.New(store.Options{
		Services: store.Services{
			Auth:     authSvc,
			Products: api.NewProductsService(client),
			Wishlist: api.NewWishlistService(client),
			Orders:   api.NewOrdersService(client),
		},
		Cart: store.CartPersistence{
			Store:    fileStore,
			Identity: authSvc.UserID,
		},
		Prefs: fileStore,
	})
	sel := store.NewSelectors(st)

	toast := feature.NewToast(st.UI)
	auth := feature.NewAuth(st, nav, lg)

	onLoading = st.UI.SetGlobalLoading
	onError = func(msg string) { st.UI.ShowError(msg) }
	onUnauthorized = auth.ForceLogout

	return &App{
		Store:     st,
		Selectors: sel,
		Client:    client,
		Auth:      auth,
		Cart:      feature.NewCart(st, sel, toast),
		Wishlist:  feature.NewWishlist(st, sel, toast),
		Products:  feature.NewProducts(ctx, st, sel),
		Checkout:  feature.NewCheckout(st, toast),
		Toast:     toast,
	}
}

// Run bootstraps a session: rehydrate the persisted cart and profile, load
// the first catalog page, then idle until the context is cancelled. It is
// the entrypoint used by cmd/storefront.
func Run(ctx context.Context, lg *zap.Logger, m *sdkapp.Metrics, cfg *Config) error {
	lg.Info("Initializing",
		zap.String("api", cfg.APIBaseURL),
		zap.String("data_dir", cfg.DataDir),
	)

	a := New(ctx, lg, m.TracerProvider(), cfg, feature.NopNavigator)
	defer a.Products.Close()

	a.Store.Cart.LoadCart()
	a.Auth.EnsureUser(ctx)
	a.Wishlist.Load(ctx)
	a.Products.Fetch(ctx, catalog.SearchParams{Page: 1, Limit: store.DefaultPageLimit})

	cartState := a.Store.Cart.State()
	pagination := a.Selectors.Pagination()
	lg.Info("Session ready",
		zap.Bool("authenticated", a.Store.Auth.State().IsAuthenticated),
		zap.Int("cart_items", cartState.ItemCount),
		zap.String("cart_total", cartState.Total.String()),
		zap.Int("catalog_total", pagination.Total),
		zap.Int("catalog_pages", pagination.TotalPages),
	)

	<-ctx.Done()
	lg.Info("Shutting down")
	return nil
}
