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

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	campusgrid "github.com/campusgrid/campusgrid"
	"github.com/campusgrid/campusgrid/config"
	"github.com/campusgrid/campusgrid/core"
	"github.com/campusgrid/campusgrid/search"
)

func main() {
	app := &cli.App{
		Name:   "campusgrid",
		Usage:  "Catalog search engine over institutes, programmes and courses",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the document store directory (overrides config)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "seed",
				Usage:     "Load a JSON catalog file into the document store",
				ArgsUsage: "<catalog.json>",
				Action:    seedCommand,
			},
			{
				Name:      "suggest",
				Usage:     "Autocomplete suggestions for a prefix",
				ArgsUsage: "<prefix>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Usage: "Maximum suggestions per entity type"},
				},
				Action: suggestCommand,
			},
			{
				Name:  "search",
				Usage: "Keyword/filtered search across all entity levels",
				Flags: append(filterFlags(),
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Free-text query"},
					&cli.StringFlag{Name: "type", Usage: "Restrict to one entity type (institute, programme, course)"},
					&cli.IntFlag{Name: "page", Value: 1},
					&cli.IntFlag{Name: "limit", Usage: "Page size"},
				),
				Action: searchCommand,
			},
			{
				Name:  "explore",
				Usage: "Faceted institute listing with counts",
				Flags: append(filterFlags(),
					&cli.StringFlag{Name: "institute-type", Usage: "Institute type filter (e.g. Private, Government)"},
					&cli.StringFlag{Name: "accreditation", Usage: `NAAC grade filter ("none" selects ungraded institutes)`},
					&cli.StringFlag{Name: "sort-by", Value: "name", Usage: "name, courses or established"},
					&cli.StringFlag{Name: "sort-order", Value: "asc", Usage: "asc or desc"},
					&cli.IntFlag{Name: "page", Value: 1},
					&cli.IntFlag{Name: "limit", Usage: "Page size"},
				),
				Action: exploreCommand,
			},
			{
				Name:      "institute",
				Usage:     "Full detail view for one institute",
				ArgsUsage: "<slug>",
				Action:    instituteCommand,
			},
			{
				Name:   "stats",
				Usage:  "Index introspection",
				Action: statsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// filterFlags are the facet filters shared by search and explore. Each one
// accepts a single value or a comma/"and"/"&"-separated list.
func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "city"},
		&cli.StringFlag{Name: "state"},
		&cli.StringFlag{Name: "level"},
		&cli.StringFlag{Name: "programme"},
		&cli.StringFlag{Name: "exam"},
		&cli.StringFlag{Name: "course"},
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if db := c.String("db"); db != "" {
		cfg.Database.Path = db
	}
	return cfg, nil
}

// openEngine opens the store and builds the index.
// The returned cleanup closes the database.
func openEngine(c *cli.Context) (*search.Engine, *config.Config, func(), error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := campusgrid.NewDatabase(cfg.Database.Path)
	if err != nil {
		return nil, nil, nil, err
	}

	engine, err := db.NewEngine(search.WithPoolSize(cfg.Search.WorkerPoolSize))
	if err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	if err := engine.Initialize(c.Context); err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	return engine, cfg, func() { db.Close() }, nil
}

// pageLimit resolves the --limit flag against the configured fallback.
func pageLimit(c *cli.Context, fallback int) int {
	if limit := c.Int("limit"); limit > 0 {
		return limit
	}
	return fallback
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func seedCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one catalog file argument")
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("reading catalog file: %w", err)
	}

	var docs []*core.RawInstitute
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("parsing catalog file: %w", err)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	db, err := campusgrid.NewDatabase(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	stored, err := db.CatalogRepository().AddInstitutes(c.Context, docs...)
	if err != nil {
		return fmt.Errorf("storing documents: %w", err)
	}

	slog.Info("catalog seeded", "documents", len(stored))
	return nil
}

func suggestCommand(c *cli.Context) error {
	engine, cfg, cleanup, err := openEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := engine.Suggest(c.Args().First(), pageLimit(c, cfg.Search.SuggestLimit))
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func searchCommand(c *cli.Context) error {
	engine, cfg, cleanup, err := openEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := engine.Search(search.SearchParams{
		Query:     c.String("query"),
		Type:      c.String("type"),
		City:      c.String("city"),
		State:     c.String("state"),
		Level:     c.String("level"),
		Programme: c.String("programme"),
		Exam:      c.String("exam"),
		Course:    c.String("course"),
		Page:      c.Int("page"),
		Limit:     pageLimit(c, cfg.Search.PageSize),
	})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func exploreCommand(c *cli.Context) error {
	engine, cfg, cleanup, err := openEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := engine.Explore(search.ExploreParams{
		City:          c.String("city"),
		State:         c.String("state"),
		Type:          c.String("institute-type"),
		Level:         c.String("level"),
		Programme:     c.String("programme"),
		Exam:          c.String("exam"),
		Course:        c.String("course"),
		Accreditation: c.String("accreditation"),
		SortBy:        c.String("sort-by"),
		SortOrder:     c.String("sort-order"),
		Page:          c.Int("page"),
		Limit:         pageLimit(c, cfg.Search.PageSize),
	})
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func instituteCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one slug argument")
	}

	engine, _, cleanup, err := openEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := engine.Institute(c.Args().First())
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func statsCommand(c *cli.Context) error {
	engine, _, cleanup, err := openEngine(c)
	if err != nil {
		return err
	}
	defer cleanup()

	resp, err := engine.Stats()
	if err != nil {
		return err
	}
	return printJSON(resp)
}
