package cli

import (
	"context"
	"fmt"
	"strings"
)

type command struct {
	name       string
	aliases    []string
	usage      string
	needsLogin bool
	minArgs    int
	run        func(ctx context.Context, args []string)
}

func (a *App) registerCommands() {
	a.cmds = []command{
		{name: "help", usage: "help", run: a.help},
		{name: "login", usage: "login [token]", run: a.login},
		{name: "logout", usage: "logout", needsLogin: true, run: a.logout},
		{name: "whoami", usage: "whoami", needsLogin: true, run: a.whoami},
		{name: "list", aliases: []string{"l"}, usage: "list", needsLogin: true, run: a.list},
		{name: "show", usage: "show <note-id>", needsLogin: true, minArgs: 1, run: a.show},
		{name: "new", usage: "new", needsLogin: true, run: a.newNote},
		{name: "edit", usage: "edit <note-id>", needsLogin: true, minArgs: 1, run: a.edit},
		{name: "delete", usage: "delete <note-id>", needsLogin: true, minArgs: 1, run: a.delete},
		{name: "users", usage: "users", needsLogin: true, run: a.users},
		{name: "share", usage: "share <note-id> <user-id|username>", needsLogin: true, minArgs: 2, run: a.share},
		{name: "accept", usage: "accept <share-id>", needsLogin: true, minArgs: 1, run: a.accept},
		{name: "reject", usage: "reject <share-id>", needsLogin: true, minArgs: 1, run: a.reject},
		{name: "notifications", aliases: []string{"n"}, usage: "notifications", needsLogin: true, run: a.notifications},
		{name: "read", usage: "read <notification-id>", needsLogin: true, minArgs: 1, run: a.markRead},
		{name: "export", usage: "export <note-id>", needsLogin: true, minArgs: 1, run: a.export},
	}

	a.byName = make(map[string]*command, len(a.cmds))
	for i := range a.cmds {
		c := &a.cmds[i]
		a.byName[c.name] = c
		for _, alias := range c.aliases {
			a.byName[alias] = c
		}
	}
}

// repl reads commands until EOF or exit.
func (a *App) repl(ctx context.Context) {
	for {
		fmt.Fprintf(a.out, "gnotes %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) > 0 && !a.dispatch(ctx, parts[0], parts[1:]) {
			return
		}
		if err != nil {
			return
		}
	}
}

// dispatch runs one command and reports whether the REPL should continue.
func (a *App) dispatch(ctx context.Context, name string, args []string) bool {
	if name == "exit" || name == "quit" {
		fmt.Fprintln(a.out, "Bye!")
		return false
	}

	c, ok := a.byName[name]
	if !ok {
		fmt.Fprintln(a.out, "Unknown command:", name)
		return true
	}
	if c.needsLogin && !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return true
	}
	if len(args) < c.minArgs {
		fmt.Fprintln(a.out, "Usage:", c.usage)
		return true
	}

	c.run(ctx, args)
	return true
}

func (a *App) help(ctx context.Context, args []string) {
	names := make([]string, 0, len(a.cmds)+1)
	for _, c := range a.cmds {
		if c.needsLogin == a.isLoggedIn() || c.name == "help" {
			names = append(names, c.usage)
		}
	}
	names = append(names, "exit")
	fmt.Fprintln(a.out, "Available commands:\n  "+strings.Join(names, "\n  "))
}
