package pages

import (
	"context"
	"sync"

	"github.com/brunohmachado/vitrine/internal/localdata"
	"github.com/brunohmachado/vitrine/internal/logging"
)

// ErrorContent is the placeholder shown in the content region when a
// fragment cannot be loaded.
const ErrorContent = `<section class="load-error"><p>Não foi possível carregar a página.</p></section>`

// Page is one navigable state. Mount receives the freshly loaded fragment
// and wires the page's behavior (its commands, its rendering); Unmount
// releases it. Mount never stacks: the controller unmounts the previous
// page before mounting the next, which is what makes re-binding idempotent.
type Page interface {
	Name() string
	Mount(ctx context.Context, fragment string) error
	Unmount(ctx context.Context)
}

// Controller is the page state machine. It fetches fragments, swaps the
// content region, records the current page for reload persistence and runs
// the mount/unmount lifecycle.
//
// Load calls are not queued or cancelled: a Load issued while another fetch
// is still pending can complete out of order, and the last one to resolve
// wins regardless of request order.
type Controller struct {
	fetcher Fetcher
	data    *localdata.Store
	log     logging.Logger

	mu      sync.Mutex
	pages   map[string]Page
	current Page
	name    string
	content string
}

func NewController(fetcher Fetcher, data *localdata.Store, log logging.Logger) *Controller {
	return &Controller{
		fetcher: fetcher,
		data:    data,
		log:     log,
		pages:   make(map[string]Page),
	}
}

// RegisterPage makes a page reachable by name. Fragments for unregistered
// names still load and swap content; they just have no behavior to mount.
func (c *Controller) RegisterPage(p Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[p.Name()] = p
}

// Load transitions to the named page. On fetch failure the content region
// shows ErrorContent and the recorded current page is left unchanged; the
// previous page also stays mounted, since its subtree was not replaced.
func (c *Controller) Load(ctx context.Context, name string) error {
	fragment, err := c.fetcher.Fetch(ctx, name)
	if err != nil {
		c.mu.Lock()
		c.content = ErrorContent
		c.mu.Unlock()
		c.log.Warn(ctx, "page load failed", "page", name, "error", err)
		return err
	}

	c.mu.Lock()
	previous := c.current
	next := c.pages[name]
	c.current = next
	c.name = name
	c.content = fragment
	c.mu.Unlock()

	if previous != nil {
		previous.Unmount(ctx)
	}

	if err := c.data.SetCurrentPage(ctx, name); err != nil {
		c.log.Warn(ctx, "failed to record current page", "page", name, "error", err)
	}

	if next != nil {
		if err := next.Mount(ctx, fragment); err != nil {
			c.log.Error(ctx, "page mount failed", "page", name, "error", err)
			return err
		}
	}

	c.log.Info(ctx, "page loaded", "page", name)
	return nil
}

// Restore transitions to the page recorded by the previous session,
// defaulting to home when none is recorded.
func (c *Controller) Restore(ctx context.Context) error {
	name, err := c.data.CurrentPage(ctx)
	if err != nil {
		return err
	}
	if name == "" {
		name = Home
	}
	return c.Load(ctx, name)
}

// Current returns the name of the mounted page, "" before the first load.
func (c *Controller) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// Content returns the markup currently occupying the content region.
func (c *Controller) Content() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}
