package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jimezsa/govjobs/internal/catalog"
	"github.com/jimezsa/govjobs/internal/favorites"
	"github.com/jimezsa/govjobs/internal/models"
	"github.com/jimezsa/govjobs/internal/network"
	"github.com/jimezsa/govjobs/internal/session"
	"github.com/jimezsa/govjobs/internal/store"
	"github.com/jimezsa/govjobs/internal/textclean"
)

const (
	redisKeyPrefix = "govjobs:"
	textCacheSize  = 512
)

// FilterFlags are the filter and sort flags shared by the listing commands.
type FilterFlags struct {
	Location  string `help:"Only jobs in this location."`
	Office    string `help:"Only jobs of this office."`
	Area      string `help:"Only jobs in this area."`
	Type      string `help:"Only jobs with this publish type."`
	Favorites bool   `help:"Only favorite jobs."`
	Sort      string `help:"Sort key: lastDate, publishDate, name, office, location." default:"lastDate"`
	Order     string `help:"Sort order: asc or desc." enum:"asc,desc" default:"asc"`
}

func (f FilterFlags) specs(query string) (models.FilterSpec, models.SortSpec) {
	spec := models.FilterSpec{
		Query:         query,
		Location:      strings.TrimSpace(f.Location),
		Office:        strings.TrimSpace(f.Office),
		Area:          strings.TrimSpace(f.Area),
		PublishType:   strings.TrimSpace(f.Type),
		FavoritesOnly: f.Favorites,
	}
	order := models.SortSpec{
		Key:   models.ParseSortKey(f.Sort),
		Order: models.ParseSortOrder(f.Order),
	}
	return spec, order
}

// app is everything a command needs for one invocation.
type app struct {
	gateway *store.Gateway
	session *session.Session
	cleaner *textclean.Cleaner
	close   func()
}

func openGateway(ctx *Context) (*store.Gateway, func()) {
	kv, closeFn := openStore(ctx)
	return store.NewGateway(kv, ctx.Config.CacheTTL(), ctx.Logger), closeFn
}

// openStore picks the key-value backend. A backend that cannot be opened falls
// back to memory so the run can continue without persistence.
func openStore(ctx *Context) (store.KV, func()) {
	noop := func() {}
	if ctx.Store != nil {
		return ctx.Store, noop
	}

	location := ctx.Config.StoreLocation(ctx.ConfigDir)
	if store.IsRedisURL(location) {
		redisStore, err := store.NewRedisStore(context.Background(), location, redisKeyPrefix)
		if err != nil {
			ctx.Logger.Warn().Err(err).Msg("redis store unavailable, state will not be saved")
			return store.NewMemoryStore(), noop
		}
		return redisStore, func() {
			if err := redisStore.Close(); err != nil {
				ctx.Logger.Debug().Err(err).Msg("close redis store")
			}
		}
	}

	fileStore, err := store.OpenFileStore(location)
	if err != nil {
		ctx.Logger.Warn().Err(err).Str("path", location).Msg("store file unavailable, state will not be saved")
		return store.NewMemoryStore(), noop
	}
	return fileStore, noop
}

func newLoader(ctx *Context, gateway *store.Gateway) *catalog.Loader {
	return &catalog.Loader{
		Local:   catalog.FileSource{Path: ctx.Config.DatasetFile(ctx.ConfigDir)},
		Gateway: gateway,
		Logger:  ctx.Logger,
		Now:     ctx.now,
	}
}

func remoteSource(ctx *Context) (catalog.Source, error) {
	client, err := network.NewClient(network.Options{
		Proxy:   ctx.Config.Proxy,
		Timeout: ctx.Config.Timeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("http client: %w", err)
	}
	apiURL := strings.TrimSpace(ctx.Config.APIURL)
	if apiURL == "" {
		apiURL = catalog.DefaultAPIURL
	}
	return catalog.RemoteSource{URL: apiURL, Client: client}, nil
}

// openApp loads the dataset and the saved favorites. Load failures end the
// invocation.
func openApp(ctx *Context) (*app, error) {
	gateway, closeFn := openGateway(ctx)
	loader := newLoader(ctx, gateway)

	bg := context.Background()
	repo, err := loader.Load(bg)
	if err != nil {
		closeFn()
		return nil, err
	}

	favs := favorites.NewManager(gateway.Favorites(bg), gateway, ctx.Logger)
	return &app{
		gateway: gateway,
		cleaner: textclean.New(textCacheSize),
		session: session.New(repo, favs, ctx.now),
		close:   closeFn,
	}, nil
}

// applyTheme loads the saved theme into the UI palette.
func applyTheme(ctx *Context, gateway *store.Gateway) {
	if ctx.UI == nil {
		return
	}
	ctx.UI.SetTheme(string(gateway.Theme(context.Background())))
}
