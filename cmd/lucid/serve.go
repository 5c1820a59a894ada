package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/cache"
	"github.com/cloudy-native/lucid/config"
	"github.com/cloudy-native/lucid/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Starts the HTTP API which the browser app uses to sample paths and build share links.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("listen") {
			cfg.Listen, _ = cmd.Flags().GetString("listen")
		}

		c, err := newCache(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		srv := server.New(server.Options{
			Cache:          c,
			DefaultSamples: cfg.Samples.Default,
			MaxSamples:     cfg.Samples.Max,
			BaseURL:        cfg.BaseURL,
			Registry:       reg,
		})

		if isTerminal(os.Stdout) {
			printBanner()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.Serve(ctx, cfg.Listen)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("listen", "l", ":8080", "Address to listen on")
}

// newCache returns the path cache chosen by the settings.
func newCache(ctx context.Context, c config.Config) (cache.Cache, error) {
	log := logrus.WithField("backend", c.Cache.Backend)

	switch c.Cache.Backend {
	case config.CacheNone:
		log.Info("path cache disabled")
		return cache.Nop{}, nil

	case config.CacheRedis:
		r := cache.NewRedis(c.Redis.Addr, c.Redis.Password, c.Redis.DB,
			cache.WithPrefix(c.Redis.Prefix),
			cache.WithTTL(c.Cache.TTL))

		if err := r.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", c.Redis.Addr, err)
		}

		log.Infof("caching paths in redis at %s", c.Redis.Addr)
		return r, nil
	}

	log.Infof("caching up to %d paths in memory", c.Cache.Size)
	return cache.NewMemory(c.Cache.Size, c.Cache.TTL), nil
}

func printBanner() {
	p := termenv.ColorProfile()
	fmt.Println()
	fmt.Println(termenv.String("  ╭─╮  ").Foreground(p.Color("#ff4d4d")).String() +
		termenv.String(lucid.Name).Bold().String())
	fmt.Println(termenv.String("  ╰─╯  ").Foreground(p.Color("#4d79ff")).String() +
		termenv.String("version "+lucid.Version).Faint().String())
	fmt.Println()
}
