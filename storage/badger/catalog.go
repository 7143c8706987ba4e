package badger

import (
	"context"
	"errors"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/campusgrid/campusgrid/core"
	"github.com/campusgrid/campusgrid/storage"
)

// CatalogRepository implements storage.CatalogRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
}

var _ storage.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(backend *Backend) *CatalogRepository {
	return &CatalogRepository{backend: backend}
}

// Close releases repository resources. The backend itself is closed by its owner.
func (r *CatalogRepository) Close() error {
	return nil
}

// AddInstitutes stores one or more institute documents, keyed by id.
// Documents with Id == 0 get a content-based id derived from their name.
func (r *CatalogRepository) AddInstitutes(ctx context.Context, docs ...*core.RawInstitute) ([]*core.RawInstitute, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, doc := range docs {
			if err := core.ValidateInstitute(doc); err != nil {
				return err
			}
			if doc.Id == 0 {
				doc.Id = core.IDFromContent(strings.ToLower(strings.TrimSpace(doc.Name)))
			}
			data, err := storage.MarshalInstitute(doc)
			if err != nil {
				return err
			}
			if err := tx.Set(makeInstituteKey(doc.Id), data); err != nil {
				return err
			}
		}
		return nil
	}, true)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// GetInstitute retrieves a single document by id.
func (r *CatalogRepository) GetInstitute(ctx context.Context, id core.ID) (*core.RawInstitute, error) {
	var doc *core.RawInstitute
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeInstituteKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			doc, err = storage.UnmarshalInstitute(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// GetAllInstitutes performs a full scan of the catalog collection.
func (r *CatalogRepository) GetAllInstitutes(ctx context.Context) ([]*core.RawInstitute, error) {
	var docs []*core.RawInstitute
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = instituteScanPrefix()
		opts.PrefetchValues = true
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(val []byte) error {
				doc, err := storage.UnmarshalInstitute(val)
				if err != nil {
					return err
				}
				docs = append(docs, doc)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// CountInstitutes returns the number of stored documents without loading values.
func (r *CatalogRepository) CountInstitutes(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = instituteScanPrefix()
		opts.PrefetchValues = false
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}
