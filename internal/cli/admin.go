package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/brunohmachado/vitrine/internal/models"
	"github.com/brunohmachado/vitrine/internal/pages"
)

// adminPage renders the admin user registry on mount and binds the
// registry commands. The registry is independent from storefront accounts.
type adminPage struct {
	app *App
}

func (p *adminPage) Name() string { return pages.Admin }

func (p *adminPage) Mount(ctx context.Context, fragment string) error {
	a := p.app

	admins, err := a.admin.List(ctx)
	if err != nil {
		return err
	}
	a.renderAdmins(admins)

	a.bindCommand("adminadd", a.cmdAdminAdd)
	a.bindCommand("admindel", a.cmdAdminRemove)
	a.bindCommand("adminfind", a.cmdAdminSearch)
	return nil
}

func (p *adminPage) Unmount(ctx context.Context) {
	p.app.unbindCommands("adminadd", "admindel", "adminfind")
}

func (a *App) renderAdmins(admins []models.AdminUser) {
	if len(admins) == 0 {
		a.println("No admin users registered.")
		return
	}
	for _, ad := range admins {
		a.printf("%d  %s <%s>  since %s\n", ad.ID, ad.Name, ad.Email, ad.Date.Format("02/01/2006"))
	}
}

// cmdAdminAdd: adminadd <name> <email>. Multi-word names are allowed; the
// last argument is the email.
func (a *App) cmdAdminAdd(ctx context.Context, args []string) {
	if len(args) < 2 {
		a.println("Usage: adminadd <name> <email>")
		return
	}
	name := strings.Join(args[:len(args)-1], " ")
	email := args[len(args)-1]

	admin, err := a.admin.Add(ctx, name, email)
	if err != nil {
		a.println("error:", err)
		return
	}
	a.printf("Admin %d registered.\n", admin.ID)
}

// cmdAdminRemove: admindel <id>.
func (a *App) cmdAdminRemove(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.println("Usage: admindel <id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		a.println("Usage: admindel <id>")
		return
	}
	if err := a.admin.Remove(ctx, id); err != nil {
		a.println("error:", err)
		return
	}
	a.println("Admin removed.")
}

// cmdAdminSearch: adminfind <term>.
func (a *App) cmdAdminSearch(ctx context.Context, args []string) {
	admins, err := a.admin.Search(ctx, strings.Join(args, " "))
	if err != nil {
		a.println("error:", err)
		return
	}
	a.renderAdmins(admins)
}
