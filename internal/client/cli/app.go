package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/config"
	"github.com/dmitrijs2005/gophnotes/internal/netx"
)

// SessionTokenEnv names the environment variable consulted on start-up.
const SessionTokenEnv = "GOPHNOTES_SESSION_TOKEN"

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// download is a test seam for netx.DownloadFromPresignedURL.
var download = netx.DownloadFromPresignedURL

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	cmds   []command
	byName map[string]*command

	mu   sync.RWMutex
	user *api.User
	mode Mode
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewNotesClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	a := &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
	a.registerCommands()
	return a
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to gophnotes CLI (type 'help' for commands)")

	if token := os.Getenv(SessionTokenEnv); token != "" {
		a.loginWith(ctx, token)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.repl(ctx)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		fmt.Fprintf(a.out, "\nSwitched to %s mode\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setUser(u *api.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
}

func (a *App) currentUser() *api.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *App) isLoggedIn() bool {
	return a.currentUser() != nil
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.client.Ping(ctx); err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) getStatus() string {
	s := ""
	if u := a.currentUser(); u != nil {
		s = u.Username + " "
	}
	s += string(a.currentMode())
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
