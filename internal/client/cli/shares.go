package cli

import (
	"context"
	"fmt"
)

// share accepts either a user id or a username as the receiver.
func (a *App) share(ctx context.Context, args []string) {
	noteID, receiver := args[0], args[1]

	if users := a.client.ListUsers(ctx); users.Success() {
		for _, u := range users.Value {
			if u.Username == receiver {
				receiver = u.ID
				break
			}
		}
	}

	res := a.client.ShareNote(ctx, noteID, receiver)
	if report(a.out, res) {
		fmt.Fprintln(a.out, "share id:", res.Value.ID)
	}
}

func (a *App) accept(ctx context.Context, args []string) {
	report(a.out, a.client.AcceptShare(ctx, args[0]))
}

func (a *App) reject(ctx context.Context, args []string) {
	report(a.out, a.client.RejectShare(ctx, args[0]))
}

func (a *App) notifications(ctx context.Context, args []string) {
	res := a.client.ListNotifications(ctx)
	if !report(a.out, res) {
		return
	}
	if len(res.Value) == 0 {
		fmt.Fprintln(a.out, "No notifications")
		return
	}
	for _, n := range res.Value {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %s  %s  %q  share %s (%s)\n",
			mark, n.ID, n.Type, n.CreatorName, n.NoteTitle, n.ShareID, n.ShareStatus)
	}
}

func (a *App) markRead(ctx context.Context, args []string) {
	report(a.out, a.client.MarkNotificationRead(ctx, args[0]))
}
