// Package cache provides Redis caching functionality for realestate-valley.
package cache

import (
	"crypto/tls"
	"fmt"
	"time"

	"realestate-valley/pkg/config"

	"github.com/go-redis/redis/v8"
)

// build client options from the redis configuration section.
func buildOptions(cfg config.RedisConfig) (*redis.Options, error) {
	var tlsConfig *tls.Config
	if cfg.TLSEnabled {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		if cfg.TLSCertFile != "" {
			keyFile := cfg.TLSKeyFile
			if keyFile == "" {
				keyFile = cfg.TLSCertFile
			}
			cert, err := tls.LoadX509KeyPair(cfg.TLSCertFile, keyFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
			}
			tlsConfig.Certificates = []tls.Certificate{cert}
		}
	}

	return &redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		TLSConfig:    tlsConfig,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}, nil
}
