package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/brunohmachado/vitrine/internal/common"
	"github.com/brunohmachado/vitrine/internal/models"
	"github.com/brunohmachado/vitrine/internal/pages"
)

// catalogPage backs the home, promo and product pages. On mount it extracts
// the product cards from the fragment and binds the catalog commands; the
// promo variant additionally gets a text filter enabled, the product variant a
// gallery listing.
type catalogPage struct {
	app        *App
	name       string
	filterable bool
	gallery    bool

	mu     sync.Mutex
	cards  []models.ProductSnapshot
	filter string
}

func (p *catalogPage) Name() string { return p.name }

func (p *catalogPage) Mount(ctx context.Context, fragment string) error {
	p.mu.Lock()
	p.cards = pages.ParseCards(fragment)
	p.filter = ""
	p.mu.Unlock()

	p.renderList()

	a := p.app
	a.bindCommand("list", func(ctx context.Context, args []string) { p.renderList() })
	a.bindCommand("add", p.cmdAdd)
	a.bindCommand("fav", p.cmdFav)
	if p.filterable {
		a.bindCommand("filter", p.cmdFilter)
	}
	if p.gallery {
		a.bindCommand("gallery", func(ctx context.Context, args []string) { p.renderGallery() })
	}
	return nil
}

func (p *catalogPage) Unmount(ctx context.Context) {
	p.app.unbindCommands("list", "add", "fav", "filter", "gallery")
}

// visible returns the cards matching the active filter.
func (p *catalogPage) visible() []models.ProductSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.filter == "" {
		return p.cards
	}
	out := make([]models.ProductSnapshot, 0, len(p.cards))
	for _, c := range p.cards {
		if strings.Contains(strings.ToLower(c.Name), p.filter) ||
			strings.Contains(strings.ToLower(c.Brand), p.filter) {
			out = append(out, c)
		}
	}
	return out
}

func (p *catalogPage) renderList() {
	cards := p.visible()
	if len(cards) == 0 {
		p.app.println("No products on this page.")
		return
	}
	for i, c := range cards {
		line := c.Name
		if c.Brand != "" {
			line += " - " + c.Brand
		}
		line += " - " + c.Price
		if c.OldPrice != "" {
			line += " (was " + c.OldPrice + ")"
		}
		p.app.printf("%2d. %s\n", i+1, line)
	}
}

func (p *catalogPage) renderGallery() {
	for _, c := range p.visible() {
		if c.Image != "" {
			p.app.printf("%s: %s\n", c.Name, c.Image)
		}
	}
}

// cmdFilter narrows the listing; "filter" without arguments clears it.
func (p *catalogPage) cmdFilter(ctx context.Context, args []string) {
	p.mu.Lock()
	p.filter = strings.ToLower(strings.Join(args, " "))
	p.mu.Unlock()
	p.renderList()
}

func (p *catalogPage) cardAt(args []string) (models.ProductSnapshot, bool) {
	if len(args) == 0 {
		return models.ProductSnapshot{}, false
	}
	n, err := strconv.Atoi(args[0])
	cards := p.visible()
	if err != nil || n < 1 || n > len(cards) {
		return models.ProductSnapshot{}, false
	}
	return cards[n-1], true
}

// cmdAdd puts the n-th listed product into the cart: add <n> [quantity].
func (p *catalogPage) cmdAdd(ctx context.Context, args []string) {
	card, ok := p.cardAt(args)
	if !ok {
		p.app.println("Usage: add <n> [quantity]")
		return
	}

	quantity := 1
	if len(args) > 1 {
		if q, err := strconv.Atoi(args[1]); err == nil {
			quantity = q
		}
	}

	item := models.CartItem{
		Name:     card.Name,
		Brand:    card.Brand,
		Specs:    card.Specs,
		Price:    card.Price,
		Image:    card.Image,
		Quantity: quantity,
	}
	if err := p.app.cart.Add(ctx, item); err != nil {
		p.app.println("error:", err)
	}
}

// cmdFav toggles the n-th listed product as a favorite of the logged-in
// user: fav <n>.
func (p *catalogPage) cmdFav(ctx context.Context, args []string) {
	card, ok := p.cardAt(args)
	if !ok {
		p.app.println("Usage: fav <n>")
		return
	}

	user := p.app.currentUser(ctx)
	err := p.app.favorites.Add(ctx, user, card)
	if err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			p.app.println("Log in to save favorites.")
		} else {
			p.app.println("error:", err)
		}
		return
	}
	p.app.printf("♥ %s saved to favorites\n", card.Name)
}
