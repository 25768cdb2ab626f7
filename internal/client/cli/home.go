package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/localauth/internal/client/models"
)

// Profile shows the home view for the logged-in user.
func (a *App) Profile(ctx context.Context) error {
	u := a.authService.Current()
	if u == nil {
		a.notifier.Info("Not logged in", "Use 'login' or 'signup' first.")
		return nil
	}
	a.showHome(u)
	return nil
}

func (a *App) showHome(u *models.User) {
	if u == nil {
		return
	}
	fmt.Fprintf(a.out, "\nHello,\n%s\n\n", u.Name)
	fmt.Fprintln(a.out, "Account Information")
	fmt.Fprintf(a.out, "  Full Name: %s\n", u.Name)
	fmt.Fprintf(a.out, "  Email:     %s\n\n", u.Email)
}
