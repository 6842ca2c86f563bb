// Command searchmcp serves web, news, image and video search tools over MCP,
// with optional full-content extraction for result pages.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/metaquery/searchmcp/pkg/enrich"
	"github.com/metaquery/searchmcp/pkg/fetch"
	"github.com/metaquery/searchmcp/pkg/search"
	"github.com/metaquery/searchmcp/pkg/server"
	"github.com/metaquery/searchmcp/pkg/tools"
)

// Filled at build time with the -X linker flag.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		transport   = flag.String("transport", "stdio", "transport to serve on: stdio or http")
		addr        = flag.String("addr", "", "listen address for the http transport (default :8933)")
		configPath  = flag.String("config", "", "path to YAML config file")
		logLevel    = flag.String("log-level", "info", "log level: trace, debug, info, warn, error")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("searchmcp %s (%s)\n", Version, Commit)
		return
	}

	// Logs go to stderr; stdout belongs to the stdio transport.
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(*logLevel); err == nil {
		log = log.Level(level)
	}

	if err := run(*transport, *addr, *configPath, log); err != nil {
		log.Fatal().Err(err).Msg("Server exited")
	}
}

func run(transport, addr, configPath string, log zerolog.Logger) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	cfg.Server.Version = Version

	fetcher, err := fetch.NewClient(cfg.Fetch)
	if err != nil {
		return err
	}
	enricher := enrich.New(cfg.Enrich, fetcher)

	registry := tools.NewRegistryWithSearchTools(tools.Deps{
		Search: func(ctx context.Context, req search.Request) (*search.Response, error) {
			return search.Search(ctx, req, &cfg.Search)
		},
		Enricher: enricher,
	})

	srv := server.New(cfg.Server, registry, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch transport {
	case "stdio":
		return srv.RunStdio(ctx)
	case "http":
		return srv.RunHTTP(ctx)
	default:
		return fmt.Errorf("unknown transport %q", transport)
	}
}
