// Copyright 2025 Campusgrid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the TOML configuration file and fills in defaults
// for anything the file leaves out.
package config

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Search   SearchConfig   `toml:"search"`
	Log      LogConfig      `toml:"log"`
}

// DatabaseConfig locates the document store.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// SearchConfig tunes the engine.
type SearchConfig struct {
	SuggestLimit   int `toml:"suggest_limit"`
	PageSize       int `toml:"page_size"`
	MaxPageSize    int `toml:"max_page_size"`
	WorkerPoolSize int `toml:"worker_pool_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	pool := runtime.NumCPU() / 2
	if pool < 1 {
		pool = 1
	}
	return &Config{
		Database: DatabaseConfig{Path: "./campusgrid.db"},
		Search: SearchConfig{
			SuggestLimit:   8,
			PageSize:       10,
			MaxPageSize:    50,
			WorkerPoolSize: pool,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a TOML file over the defaults. Fields absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if cfg.Search.SuggestLimit < 1 {
		cfg.Search.SuggestLimit = 8
	}
	if cfg.Search.PageSize < 1 {
		cfg.Search.PageSize = 10
	}
	if cfg.Search.MaxPageSize < cfg.Search.PageSize {
		cfg.Search.MaxPageSize = cfg.Search.PageSize
	}
	if cfg.Search.WorkerPoolSize < 1 {
		cfg.Search.WorkerPoolSize = 1
	}
	return cfg, nil
}
