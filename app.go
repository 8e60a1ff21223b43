package main

import (
	"os"
	"strings"
	"time"

	"citisevak-cli/cache"
	"citisevak-cli/client"
	"citisevak-cli/config"

	"github.com/sirupsen/logrus"
)

// appEnv bundles everything a command action needs: configuration, the API
// client with its cache, and the logger.
type appEnv struct {
	cfg    config.Config
	log    *logrus.Logger
	client *client.Client
}

func newAppEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	store, err := cacheStore(cfg, log)
	if err != nil {
		return nil, err
	}

	c, err := client.New(cfg.APIBaseURL,
		client.WithCache(cache.New(store, time.Duration(cfg.CacheTTLSeconds)*time.Second)),
		client.WithLogger(log),
		client.WithTimeout(time.Duration(cfg.RequestTimeoutSeconds)*time.Second),
	)
	if err != nil {
		return nil, err
	}

	a := &appEnv{cfg: cfg, log: log, client: c}
	a.restoreSession()
	return a, nil
}

// cacheStore picks the Redis-backed store when an address is configured,
// falling back to the in-process store otherwise.
func cacheStore(cfg config.Config, log *logrus.Logger) (cache.Store, error) {
	rdb, err := config.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		return cache.NewMemoryStore(), nil
	}
	log.WithField("addr", cfg.RedisAddress).Debug("using redis cache")
	return cache.NewRedisStore(rdb), nil
}

// restoreSession reads the saved access token, if any. An expired token is
// loaded but never presented; the client treats it as logged out.
func (a *appEnv) restoreSession() {
	data, err := os.ReadFile(a.cfg.TokenFile)
	if err != nil {
		return
	}
	token := strings.TrimSpace(string(data))
	if token != "" {
		a.client.Session().SetToken(token)
	}
}

func (a *appEnv) saveSession() error {
	token, ok := a.client.Session().Token()
	if !ok {
		return a.clearSession()
	}
	return os.WriteFile(a.cfg.TokenFile, []byte(token+"\n"), 0o600)
}

func (a *appEnv) clearSession() error {
	err := os.Remove(a.cfg.TokenFile)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
