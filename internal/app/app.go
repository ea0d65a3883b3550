// Package app wires the operator-gui components together: the operator-cli
// invoker, the page responder and its watcher, metrics, and the HTTP server.
package app

import (
	"fmt"

	fsw "github.com/corey/operator-gui/internal/adapters/fsnotify"
	"github.com/corey/operator-gui/internal/adapters/metrics"
	"github.com/corey/operator-gui/internal/adapters/operatorcli"
	"github.com/corey/operator-gui/internal/adapters/web"
	"github.com/sirupsen/logrus"
)

// App is the top-level container wiring all components together.
type App struct {
	Config    Config
	Log       *logrus.Logger
	Invoker   *operatorcli.Invoker
	Metrics   *metrics.Metrics
	Page      *web.Page
	Watcher   *fsw.Watcher
	WebServer *web.Server
}

// New creates an App with all dependencies wired. Does not start services.
func New(cfg Config, log *logrus.Logger) (*App, error) {
	if cfg.PagePath == "" {
		return nil, fmt.Errorf("page path required")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	watcher, err := fsw.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	m := metrics.New()
	invoker := operatorcli.New(cfg.Command, log)
	invoker.Observer = m
	page := web.NewPage(cfg.PagePath)

	a := &App{
		Config:  cfg,
		Log:     log,
		Invoker: invoker,
		Metrics: m,
		Page:    page,
		Watcher: watcher,
	}
	a.WebServer = web.NewServer(invoker, page, web.Options{
		Metrics:     m,
		Command:     invoker.Command,
		CommandPath: invoker.Path,
	})
	return a, nil
}

// Start begins watching the page and serving HTTP. A failed watch is not
// fatal: the page is then read from disk on every request.
func (a *App) Start() error {
	if err := a.Page.Watch(a.Watcher); err != nil {
		a.Log.Warnf("page watcher unavailable, serving %s uncached: %v", a.Page.Path(), err)
	}
	if err := a.WebServer.Start(a.Config.Port); err != nil {
		a.Watcher.Stop()
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server and the watcher.
// Running operator-cli children are not killed.
func (a *App) Stop() error {
	a.WebServer.Stop()
	return a.Watcher.Stop()
}
