package lite

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"

	"github.com/indigo-web/lite/config"
	"github.com/indigo-web/lite/internal/server/http"
	"github.com/indigo-web/lite/internal/server/tcp"
	"github.com/indigo-web/lite/logging"
	"github.com/indigo-web/lite/router"
	"github.com/indigo-web/lite/router/inbuilt"
)

type ListenerConstructor func(network, addr string) (net.Listener, error)

// App holds everything needed to start serving: the router, the config and the logger.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	router router.Router
	listen ListenerConstructor
	hooks  hooks
}

// New returns a new App instance with default config, logging to stderr.
func New() *App {
	return &App{
		cfg:    config.Default(),
		logger: logging.New(os.Stderr, slog.LevelInfo),
		listen: net.Listen,
	}
}

// Tune replaces default settings. Zero values are filled with defaults.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// Logger replaces the default logger.
func (a *App) Logger(logger *slog.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}

	a.logger = logger
	return a
}

// Listener replaces net.Listen with a custom constructor, e.g. to wrap the listener.
func (a *App) Listener(constructor ListenerConstructor) *App {
	if constructor != nil {
		a.listen = constructor
	}

	return a
}

// NotifyOnStart calls the callback right before the accept loop starts.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// Serve sets the router. If nil is passed, an empty inbuilt router is used, so every
// request is answered with 404 Not Found.
func (a *App) Serve(r router.Router) *App {
	a.router = r
	return a
}

// Bind opens the listening socket. Failing to bind is the only error preventing the
// server from starting.
func (a *App) Bind(host string, port uint16) (*Bound, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(int(port)))
	sock, err := a.listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("lite: bind %s: %w", addr, err)
	}

	r := a.router
	if r == nil {
		r = inbuilt.New()
	}

	httpServer := http.NewServer(r, a.cfg, a.logger)

	return &Bound{
		server: tcp.NewServer(sock, httpServer.HandleConn),
		logger: a.logger,
		hooks:  a.hooks,
	}, nil
}

// Bound is an App with the listening socket already opened.
type Bound struct {
	server *tcp.Server
	logger *slog.Logger
	hooks  hooks
}

// Addr returns the actual listening address. Useful if the port 0 was requested.
func (b *Bound) Addr() net.Addr {
	return b.server.Addr()
}

// Run accepts connections until the listener fails or Stop is called, returning
// status.ErrShutdown in the latter case. Connections being served are never awaited.
func (b *Bound) Run() error {
	b.logger.Info("listening", slog.String("addr", b.Addr().String()))
	callIfNotNil(b.hooks.OnStart)

	err := b.server.Start()
	b.logger.Info("stopped accepting connections", slog.String("reason", err.Error()))
	return err
}

// Stop closes the listener. Connections being served are left to complete on their own.
//
// NOTE: the call isn't blocking. So by that, after the method returned, Run may still
// be returning.
func (b *Bound) Stop() error {
	return b.server.Stop()
}

type hooks struct {
	OnStart func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
