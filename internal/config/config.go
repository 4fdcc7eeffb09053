// Package config resolves process settings once at startup. Nothing here is
// re-read after the handlers are built.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	DefaultEmployeeTable = "EmployeeData"
	DefaultListenAddr    = ":5000"

	indexIDParam = "/kendra_index_id"
)

// ParamLookup is satisfied by *paramstore.Client.
type ParamLookup interface {
	Lookup(ctx context.Context, name string) (string, bool, error)
}

// Config holds every setting the two entry points read.
type Config struct {
	IndexID       string
	EmployeeTable string
	ParamPrefix   string
	SearchRegion  string
	ListenAddr    string
	LogLevel      slog.Level
}

// FromEnv reads the environment. An empty IndexID is not an error: the search
// relay reports itself unavailable instead of refusing to start.
func FromEnv() Config {
	return Config{
		IndexID:       envStr("KENDRA_INDEX_ID", ""),
		EmployeeTable: envStr("DYNAMODB_TABLE", DefaultEmployeeTable),
		ParamPrefix:   strings.TrimRight(envStr("PARAM_PREFIX", ""), "/"),
		SearchRegion:  envStr("SEARCH_REGION", ""),
		ListenAddr:    envStr("LISTEN_ADDR", DefaultListenAddr),
		LogLevel:      parseLevel(os.Getenv("LOG_LEVEL")),
	}
}

// IndexParameterName is the SSM parameter consulted when KENDRA_INDEX_ID is unset.
func (c Config) IndexParameterName() string {
	if c.ParamPrefix == "" {
		return ""
	}
	return c.ParamPrefix + indexIDParam
}

// ResolveIndexID fills IndexID from the parameter store when the environment
// did not set it. A missing parameter leaves IndexID empty.
func (c *Config) ResolveIndexID(ctx context.Context, params ParamLookup) error {
	if c.IndexID != "" {
		return nil
	}
	name := c.IndexParameterName()
	if name == "" || params == nil {
		return nil
	}
	v, found, err := params.Lookup(ctx, name)
	if err != nil {
		return fmt.Errorf("config: resolve index ID: %w", err)
	}
	if found {
		c.IndexID = v
	}
	return nil
}

// NewLogger builds the JSON logger used by both entry points.
func NewLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func envStr(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
