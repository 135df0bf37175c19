package cli

import "context"

// staticPage covers fragments with no page-scoped commands of their own,
// such as the login and register pages. The matching actions are global
// shell commands.
type staticPage struct {
	app  *App
	name string
}

func (p *staticPage) Name() string { return p.name }

func (p *staticPage) Mount(ctx context.Context, fragment string) error {
	p.app.printf("Use the %q command to continue.\n", p.name)
	return nil
}

func (p *staticPage) Unmount(ctx context.Context) {}
