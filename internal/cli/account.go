package cli

import (
	"context"

	"github.com/brunohmachado/vitrine/internal/money"
	"github.com/brunohmachado/vitrine/internal/pages"
	"github.com/brunohmachado/vitrine/internal/services"
)

// accountPage populates the profile, order history and favorites sections
// on mount and binds the profile commands.
type accountPage struct {
	app *App
}

func (p *accountPage) Name() string { return pages.Account }

func (p *accountPage) Mount(ctx context.Context, fragment string) error {
	a := p.app

	user := a.currentUser(ctx)
	if user == nil {
		a.println("Log in to see your account.")
		return nil
	}

	a.printf("Profile: %s <%s>  phone: %s  CPF: %s\n", user.Name, user.Email, user.Phone, user.CPF)

	orders, err := a.orders.List(ctx, user)
	if err != nil {
		return err
	}
	a.printf("Orders (%d):\n", len(orders))
	for _, o := range orders {
		a.printf("  %s - %s - %d item(s) - total %s\n",
			o.Date.Format("02/01/2006"), o.ID, len(o.Items), money.Format(o.Total))
	}

	favs, err := a.favorites.List(ctx, user)
	if err != nil {
		return err
	}
	a.printf("Favorites (%d):\n", len(favs))
	for _, f := range favs {
		a.printf("  [%s] %s - %s\n", f.ID, f.Name, f.Price)
	}

	a.bindCommand("profile", a.cmdUpdateProfile)
	a.bindCommand("passwd", a.cmdChangePassword)
	a.bindCommand("unfav", a.cmdRemoveFavorite)
	return nil
}

func (p *accountPage) Unmount(ctx context.Context) {
	p.app.unbindCommands("profile", "passwd", "unfav")
}

// cmdUpdateProfile prompts for new profile fields; empty answers keep the
// current value.
func (a *App) cmdUpdateProfile(ctx context.Context, args []string) {
	var input services.ProfileInput
	var err error

	if input.Name, err = GetSimpleText(a.reader, "New name (empty keeps current)", a.out); err != nil {
		a.println("error:", err)
		return
	}
	if input.Email, err = GetSimpleText(a.reader, "New email (empty keeps current)", a.out); err != nil {
		a.println("error:", err)
		return
	}
	if input.Phone, err = GetSimpleText(a.reader, "New phone (empty keeps current)", a.out); err != nil {
		a.println("error:", err)
		return
	}
	if input.CPF, err = GetSimpleText(a.reader, "New CPF (empty keeps current)", a.out); err != nil {
		a.println("error:", err)
		return
	}

	user, err := a.auth.UpdateProfile(ctx, input)
	if err != nil {
		a.println("Profile update failed:", err)
		return
	}
	a.printf("Profile updated, %s.\n", user.Name)
}

func (a *App) cmdChangePassword(ctx context.Context, args []string) {
	current, err := GetPassword("Current password", a.out)
	if err != nil {
		a.println("error:", err)
		return
	}
	newPassword, err := GetPassword("New password (min. 6 characters)", a.out)
	if err != nil {
		a.println("error:", err)
		return
	}
	confirm, err := GetPassword("Confirm new password", a.out)
	if err != nil {
		a.println("error:", err)
		return
	}

	if err := a.auth.ChangePassword(ctx, current, newPassword, confirm); err != nil {
		a.println("Password change failed:", err)
		return
	}
	a.println("Password changed.")
}

// cmdRemoveFavorite: unfav <id>.
func (a *App) cmdRemoveFavorite(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.println("Usage: unfav <id>")
		return
	}
	if err := a.favorites.RemoveByID(ctx, a.currentUser(ctx), args[0]); err != nil {
		a.println("error:", err)
		return
	}
	a.println("Favorite removed.")
}
