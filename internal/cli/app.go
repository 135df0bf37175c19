// Package cli hosts the interactive storefront shell. The shell is the
// page controller's host: global commands (navigation, login, register)
// are always available, while page-scoped commands are bound by each
// page's Mount and released by its Unmount.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/brunohmachado/vitrine/internal/config"
	"github.com/brunohmachado/vitrine/internal/localdata"
	"github.com/brunohmachado/vitrine/internal/logging"
	"github.com/brunohmachado/vitrine/internal/models"
	"github.com/brunohmachado/vitrine/internal/pages"
	"github.com/brunohmachado/vitrine/internal/services"
	"github.com/brunohmachado/vitrine/internal/storage"
)

type commandFunc func(ctx context.Context, args []string)

type App struct {
	config *config.Config
	log    logging.Logger
	store  *storage.SQLiteRepository
	data   *localdata.Store

	auth      services.AuthService
	cart      services.CartService
	favorites services.FavoriteService
	orders    services.OrderService
	admin     services.AdminService

	controller *pages.Controller

	reader *bufio.Reader
	out    io.Writer

	mu           sync.Mutex
	pageCommands map[string]commandFunc
	badge        int
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	repo, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)
	data := localdata.NewStore(repo)

	app := &App{
		config:       cfg,
		log:          log,
		store:        repo,
		data:         data,
		auth:         services.NewAuthService(data),
		cart:         services.NewCartService(data),
		favorites:    services.NewFavoriteService(data),
		orders:       services.NewOrderService(data),
		admin:        services.NewAdminService(data),
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		pageCommands: make(map[string]commandFunc),
	}

	app.controller = pages.NewController(pages.NewHTTPFetcher(cfg.FragmentBaseURL), data, log)
	app.registerPages()
	app.cart.Subscribe(app)

	return app, nil
}

func (a *App) registerPages() {
	a.controller.RegisterPage(&catalogPage{app: a, name: pages.Home})
	a.controller.RegisterPage(&catalogPage{app: a, name: pages.Promo, filterable: true})
	a.controller.RegisterPage(&catalogPage{app: a, name: pages.Product, gallery: true})
	a.controller.RegisterPage(&cartPage{app: a})
	a.controller.RegisterPage(&accountPage{app: a})
	a.controller.RegisterPage(&adminPage{app: a})
	a.controller.RegisterPage(&staticPage{app: a, name: pages.Login})
	a.controller.RegisterPage(&staticPage{app: a, name: pages.Register})
}

// Run restores the last visited page and starts the shell loop.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.store.Close() }()

	if count, err := a.cart.TotalItemCount(ctx); err == nil {
		a.setBadge(count)
	}

	if err := a.controller.Restore(ctx); err != nil {
		a.println(pages.ErrorContent)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runShell(ctx, a, a.status, scanner)
	return nil
}

// ItemAdded implements services.CartObserver: user feedback on every add.
func (a *App) ItemAdded(item models.CartItem) {
	a.printf("Added to cart: %s\n", item.Name)
}

// BadgeChanged implements services.CartObserver. When the cart page is the
// active one, its contents and summary are re-rendered immediately.
func (a *App) BadgeChanged(count int) {
	a.setBadge(count)
	if a.controller.Current() == pages.Cart {
		a.renderCart(context.Background())
	}
}

func (a *App) setBadge(count int) {
	a.mu.Lock()
	a.badge = count
	a.mu.Unlock()
}

// status builds the prompt suffix: logged-in user and cart badge. The badge
// stays hidden while the cart is empty.
func (a *App) status() string {
	s := ""
	if u := a.currentUser(context.Background()); u != nil {
		s = u.Name
	}

	a.mu.Lock()
	badge := a.badge
	a.mu.Unlock()
	if badge > 0 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("cart:%d", badge)
	}

	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) currentUser(ctx context.Context) *models.User {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read session", "error", err)
		return nil
	}
	return u
}

func (a *App) isLoggedIn() bool {
	return a.currentUser(context.Background()) != nil
}

// bindCommand attaches a page-scoped command. Called from page Mount hooks.
func (a *App) bindCommand(name string, fn commandFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pageCommands[name] = fn
}

// unbindCommands detaches page-scoped commands. Called from Unmount hooks.
func (a *App) unbindCommands(names ...string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, n := range names {
		delete(a.pageCommands, n)
	}
}

func (a *App) pageCommand(name string) (commandFunc, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn, ok := a.pageCommands[name]
	return fn, ok
}

func (a *App) boundCommandNames() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	names := make([]string, 0, len(a.pageCommands))
	for n := range a.pageCommands {
		names = append(names, n)
	}
	return names
}

// OpenPage drives a page transition and prints the resulting content
// region, which is the error placeholder when the fragment failed to load.
func (a *App) OpenPage(ctx context.Context, name string) error {
	err := a.controller.Load(ctx, name)
	a.println(a.controller.Content())
	return err
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
