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

// Package campusgrid wires the document store and the search engine
// together. It is the composition root: applications open one Database
// and hand its engine to their HTTP or CLI layer.
package campusgrid

import (
	"log/slog"

	"github.com/campusgrid/campusgrid/search"
	"github.com/campusgrid/campusgrid/storage"
	"github.com/campusgrid/campusgrid/storage/badger"
)

// Database owns the store backend and the catalog repository.
type Database struct {
	backend *badger.Backend
	catalog storage.CatalogRepository
	logger  *slog.Logger
}

// NewDatabase opens the document store at filePath, creating it if needed.
func NewDatabase(filePath string) (*Database, error) {
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	return &Database{
		backend: backend,
		catalog: badger.NewCatalogRepository(backend),
		logger:  slog.Default(),
	}, nil
}

// NewMemoryDatabase opens an in-memory document store, mainly for tests and
// one-shot tooling.
func NewMemoryDatabase() (*Database, error) {
	backend, err := badger.OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	return &Database{
		backend: backend,
		catalog: badger.NewCatalogRepository(backend),
		logger:  slog.Default(),
	}, nil
}

// Close releases the repository and the backend.
func (db *Database) Close() error {
	if err := db.catalog.Close(); err != nil {
		db.logger.Error("error closing catalog repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// CatalogRepository returns the raw document repository.
func (db *Database) CatalogRepository() storage.CatalogRepository {
	return db.catalog
}

// NewEngine creates a search engine over this database's catalog.
// The engine still needs Initialize before it answers queries.
func (db *Database) NewEngine(opts ...search.Option) (*search.Engine, error) {
	return search.NewEngine(db.catalog, opts...)
}
