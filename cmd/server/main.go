package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"valentine.share/config"
	"valentine.share/internal/api"
	"valentine.share/internal/logging"
	"valentine.share/internal/service"
	"valentine.share/internal/store"
)

// Outbound DNS is pinned to two public resolvers rather than the host
// configuration.
var dnsResolvers = []string{"8.8.8.8:53", "1.1.1.1:53"}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logging.Setup()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	pinDNS()

	st := initStore(cfg)
	defer st.Close()

	svc := service.NewSurpriseService(st, cfg.Server.BaseURL)
	router := api.SetupRouter(svc, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server starting")
	log.Info().Str("store", cfg.Store.Type).Msg("store backend")
	if cfg.Server.BaseURL != "" {
		log.Info().Str("base_url", cfg.Server.BaseURL).Msg("link base override")
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

// initStore connects the configured backend. A failed connection is
// fatal: the process must not begin serving without storage.
func initStore(cfg *config.Config) store.Store {
	switch cfg.Store.Type {
	case "redis":
		st, err := store.NewRedisStore(&redis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		return st
	default:
		return store.NewMemoryStore()
	}
}

func pinDNS() {
	net.DefaultResolver = &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
			d := net.Dialer{Timeout: 5 * time.Second}
			conn, err := d.DialContext(ctx, network, dnsResolvers[0])
			if err != nil {
				return d.DialContext(ctx, network, dnsResolvers[1])
			}
			return conn, nil
		},
	}
}
