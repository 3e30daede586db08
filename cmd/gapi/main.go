// Command gapi inspects the bound Google APIs, checks them against the live
// Discovery service and calls any discovery-described method.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gapi/internal/catalog"
	"gapi/internal/config"
	"gapi/internal/discovery"
	"gapi/internal/logging"
	"gapi/internal/redact"
)

// errDrift signals that check found breaking drift.
var errDrift = errors.New("breaking drift detected")

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, errDrift) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand.
type app struct {
	configPath    string
	logFormat     string
	logLevel      string
	noCache       bool
	discoveryBase string

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg      *config.Config
	logger   *slog.Logger
	redactor *redact.Redactor
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "gapi",
		Short: "Typed Google REST API bindings and a discovery-driven caller",
		Long: `gapi ships typed bindings for a handful of Google REST APIs.

The CLI lists what is bound, checks the bindings against the live Discovery
documents and can call any method a Discovery document describes.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", defaultConfigPath(), "path to YAML config")
	flags.StringVar(&a.logFormat, "log-format", "", "log output format: text, json (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&a.noCache, "no-cache", false, "bypass the discovery document cache")
	flags.StringVar(&a.discoveryBase, "discovery-base", "", "alternate Discovery service root")
	_ = flags.MarkHidden("discovery-base")

	root.AddCommand(
		newAPIsCmd(a),
		newMethodsCmd(a),
		newCheckCmd(a),
		newCallCmd(a),
		newBatchCmd(a),
		newExportCmd(a),
	)
	return root
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "gapi.yaml"
	}
	return filepath.Join(dir, "gapi", "config.yaml")
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	format, level := cfg.LogFormat, cfg.LogLevel
	if a.logFormat != "" {
		format = a.logFormat
	}
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.logger = logging.SetupWriter(a.errOut, format, level)

	a.redactor = redact.NewRedactor()
	a.redactor.AddSecrets(cfg.Secrets())
	return nil
}

// discoveryURL returns where the Discovery document for name/version lives.
func (a *app) discoveryURL(name, version string) string {
	if a.discoveryBase == "" {
		return discovery.DirectoryURL(name, version)
	}
	return strings.TrimRight(a.discoveryBase, "/") + "/discovery/v1/apis/" + name + "/" + version + "/rest"
}

// newFetcher returns a Discovery fetcher and a func releasing its cache.
func (a *app) newFetcher() (*discovery.Fetcher, func()) {
	client := &http.Client{Timeout: a.cfg.Timeout(nil)}
	if a.noCache || a.cfg.Cache.Disabled || a.cfg.Cache.Path == "" {
		return discovery.NewFetcher(client, nil, a.logger), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(a.cfg.Cache.Path), 0o755); err != nil {
		a.logger.Warn("discovery cache unavailable", "path", a.cfg.Cache.Path, "error", err)
		return discovery.NewFetcher(client, nil, a.logger), func() {}
	}
	cache, err := discovery.OpenCache(a.cfg.Cache.Path, a.cfg.CacheTTL())
	if err != nil {
		a.logger.Warn("discovery cache unavailable", "path", a.cfg.Cache.Path, "error", err)
		return discovery.NewFetcher(client, nil, a.logger), func() {}
	}
	return discovery.NewFetcher(client, cache, a.logger), func() { _ = cache.Close() }
}

func (a *app) lookup(name string) (catalog.Entry, error) {
	e, ok := catalog.Lookup(name)
	if !ok {
		return catalog.Entry{}, fmt.Errorf("unknown api %q (known: %s)", name, strings.Join(catalog.Names(), ", "))
	}
	return e, nil
}
