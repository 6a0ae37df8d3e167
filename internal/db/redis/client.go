package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/wainnrooh/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Connection defaults.
const (
	DefaultClientName   = "wainnrooh"
	DefaultWriteTimeout = 2 * time.Second
	DefaultReadyPoll    = 100 * time.Millisecond
)

// Config holds connection parameters for the store behind recent-search
// lists, cached assistant replies and budget counters.
type Config struct {
	Addrs    []string
	Username string
	Password string
	DB       int
	// ClientName is reported in CLIENT LIST.
	ClientName string
	// WriteTimeout bounds each command and the background PINGs.
	WriteTimeout time.Duration
	// ReadyPoll is the Ping interval of WaitForReady.
	ReadyPoll time.Duration
}

func (c Config) withDefaults() Config {
	if c.ClientName == "" {
		c.ClientName = DefaultClientName
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.ReadyPoll <= 0 {
		c.ReadyPoll = DefaultReadyPoll
	}
	return c
}

func (c Config) clientOption() rueidis.ClientOption {
	return rueidis.ClientOption{
		InitAddress:      c.Addrs,
		Username:         c.Username,
		Password:         c.Password,
		SelectDB:         c.DB,
		ClientName:       c.ClientName,
		ConnWriteTimeout: c.WriteTimeout,
		DisableCache: true,
	}
}

// Store implements db.Store via rueidis. Valkey speaks the same protocol and uses it too.
type Store struct {
	client    rueidis.Client
	readyPoll time.Duration
}

// NewStore connects to the first reachable address in cfg.Addrs.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Addrs) == 0 {
		return nil, errors.New("addrs is required")
	}
	cfg = cfg.withDefaults()

	client, err := rueidis.NewClient(cfg.clientOption())
	if err != nil {
		return nil, fmt.Errorf("connect %v: %w", cfg.Addrs, err)
	}
	return &Store{client: client, readyPoll: cfg.ReadyPoll}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.do(ctx, s.b().Ping().Build()).Error(); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	s.client.Close()
}

// WaitForReady pings until the store answers or timeout expires. On timeout the
// last ping error is reported alongside the context error.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	poll := s.readyPoll
	if poll <= 0 {
		poll = DefaultReadyPoll
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	var last error
	for {
		if last = s.Ping(ctx); last == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("store not ready after %s: %w", timeout, errors.Join(ctx.Err(), last))
		case <-ticker.C:
		}
	}
}

func (s *Store) do(ctx context.Context, cmd rueidis.Completed) rueidis.RedisResult {
	return s.client.Do(ctx, cmd)
}

func (s *Store) b() rueidis.Builder {
	return s.client.B()
}
