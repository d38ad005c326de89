// Package store keeps the five e-tax document fixtures: one JSON file and
// one in-memory slot per document kind. Each file wraps its payload in a
// single GetInvoice field, the layout the data directories have always had.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mmdatafocus/etax_backend/models"
	"github.com/mmdatafocus/etax_backend/utils"
)

type documentFile struct {
	GetInvoice json.RawMessage `json:"GetInvoice"`
}

// Store owns the per-kind document slots. Reads take a shared lock;
// Save holds the kind's writer mutex across the durable write and the
// slot swap, so two corrections against the same kind cannot lose an
// update. The durable copy is written first: a failed save leaves the
// in-memory slot untouched.
type Store struct {
	dir    string
	logger *logrus.Logger

	mu     sync.RWMutex
	docs   map[models.DocumentKind]models.MonetaryDocument
	kindMu map[models.DocumentKind]*sync.Mutex
}

// Open loads and validates every document kind from dir. All five
// fixture files must be present and well-formed.
func Open(dir string, logger *logrus.Logger) (*Store, error) {
	s := &Store{
		dir:    dir,
		logger: logger,
		docs:   make(map[models.DocumentKind]models.MonetaryDocument, len(models.AllDocumentKinds)),
		kindMu: make(map[models.DocumentKind]*sync.Mutex, len(models.AllDocumentKinds)),
	}
	for _, kind := range models.AllDocumentKinds {
		doc, err := loadDocument(dir, kind)
		if err != nil {
			return nil, err
		}
		s.docs[kind] = doc
		s.kindMu[kind] = &sync.Mutex{}
	}
	if logger != nil {
		logger.WithFields(logrus.Fields{
			"module": "store",
			"dir":    dir,
			"kinds":  len(s.docs),
		}).Info("document fixtures loaded")
	}
	return s, nil
}

func loadDocument(dir string, kind models.DocumentKind) (models.MonetaryDocument, error) {
	path := filepath.Join(dir, kind.FileName())
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.NewStorageError("load", string(kind), err)
	}
	var file documentFile
	if err := utils.UnmarshalFromJSON(data, &file); err != nil {
		return nil, utils.NewStorageError("load", string(kind), err)
	}
	if len(file.GetInvoice) == 0 {
		return nil, utils.NewStorageError("load", string(kind), fmt.Errorf("missing GetInvoice payload in %s", path))
	}
	doc := kind.NewDocument()
	if err := json.Unmarshal(file.GetInvoice, doc); err != nil {
		return nil, utils.NewStorageError("load", string(kind), err)
	}
	if err := models.ValidateDocument(doc); err != nil {
		return nil, utils.NewStorageError("load", string(kind), err)
	}
	return doc, nil
}

// Document returns the current in-memory document for the kind.
func (s *Store) Document(kind models.DocumentKind) models.MonetaryDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[kind]
	if !ok {
		return nil
	}
	return doc
}

func (s *Store) ReceiptTaxInvoice() *models.ReceiptTaxInvoice {
	doc, _ := s.Document(models.DocumentKindReceiptTaxInvoice).(*models.ReceiptTaxInvoice)
	return doc
}

func (s *Store) SaveCreditNote(ctx context.Context, note *models.CreditNote) error {
	return s.Save(ctx, note)
}

func (s *Store) SaveDebitNote(ctx context.Context, note *models.DebitNote) error {
	return s.Save(ctx, note)
}

// Save durably replaces the persisted document for doc's kind, then swaps
// the in-memory slot. The write goes to a temp file in the same directory
// and is renamed over the fixture, so a crash mid-write cannot leave a
// half-written file behind.
func (s *Store) Save(ctx context.Context, doc models.MonetaryDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := models.ValidateDocument(doc); err != nil {
		return err
	}
	kind := doc.DocumentKind()
	lock, ok := s.kindMu[kind]
	if !ok {
		return utils.NewStorageError("save", string(kind), fmt.Errorf("unknown document kind"))
	}
	lock.Lock()
	defer lock.Unlock()

	if err := s.writeFile(kind, doc); err != nil {
		return err
	}

	s.mu.Lock()
	s.docs[kind] = doc
	s.mu.Unlock()
	return nil
}

func (s *Store) writeFile(kind models.DocumentKind, doc models.MonetaryDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return utils.NewStorageError("save", string(kind), err)
	}
	out, err := utils.MarshalToIndentedJSON(documentFile{GetInvoice: payload})
	if err != nil {
		return utils.NewStorageError("save", string(kind), err)
	}

	tmp, err := os.CreateTemp(s.dir, kind.FileName()+".tmp-*")
	if err != nil {
		return utils.NewStorageError("save", string(kind), err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return utils.NewStorageError("save", string(kind), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return utils.NewStorageError("save", string(kind), err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, kind.FileName())); err != nil {
		os.Remove(tmpName)
		return utils.NewStorageError("save", string(kind), err)
	}
	return nil
}

// Seed writes a fixture file per document without opening a store. Used
// by cmd/seed-fixtures and by tests to lay down a data directory.
func Seed(dir string, docs ...models.MonetaryDocument) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return utils.NewStorageError("seed", dir, err)
	}
	for _, doc := range docs {
		if err := models.ValidateDocument(doc); err != nil {
			return err
		}
		kind := doc.DocumentKind()
		payload, err := json.Marshal(doc)
		if err != nil {
			return utils.NewStorageError("seed", string(kind), err)
		}
		out, err := utils.MarshalToIndentedJSON(documentFile{GetInvoice: payload})
		if err != nil {
			return utils.NewStorageError("seed", string(kind), err)
		}
		if err := os.WriteFile(filepath.Join(dir, kind.FileName()), out, 0o644); err != nil {
			return utils.NewStorageError("seed", string(kind), err)
		}
	}
	return nil
}
