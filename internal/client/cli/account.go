package cli

import (
	"context"
	"fmt"
)

func (a *App) login(ctx context.Context, args []string) {
	var token string
	if len(args) > 0 {
		token = args[0]
	} else {
		t, err := GetSecret(a.out, "Paste session token: ")
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
			return
		}
		token = t
	}

	if token == "" {
		fmt.Fprintln(a.out, "Error: empty token")
		return
	}
	a.loginWith(ctx, token)
}

func (a *App) loginWith(ctx context.Context, token string) {
	res := a.client.Login(ctx, token)
	if report(a.out, res) {
		u := res.Value
		a.setUser(&u)
	}
}

func (a *App) logout(ctx context.Context, args []string) {
	a.client.Logout()
	a.setUser(nil)
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) whoami(ctx context.Context, args []string) {
	res := a.client.WhoAmI(ctx)
	if !report(a.out, res) {
		return
	}
	u := res.Value
	a.setUser(&u)
	fmt.Fprintf(a.out, "%s  %s  %s <%s>\n", u.ID, u.Username, u.DisplayName, u.Email)
}

func (a *App) users(ctx context.Context, args []string) {
	res := a.client.ListUsers(ctx)
	if !report(a.out, res) {
		return
	}
	if len(res.Value) == 0 {
		fmt.Fprintln(a.out, "No other users")
		return
	}
	for _, u := range res.Value {
		fmt.Fprintf(a.out, "%s  %s  %s\n", u.ID, u.Username, u.DisplayName)
	}
}
