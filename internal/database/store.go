package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"choppinzskys-backend/internal/config"
	"choppinzskys-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnavailable is returned by every Store operation while the store is in
// its degraded state (missing configuration or a failed connection).
var ErrUnavailable = errors.New("store unavailable: database not configured")

// DocumentID is the external form of a store-assigned document identifier.
// The internal integer id never crosses this boundary.
type DocumentID string

// StoredDocument is a persisted record read back from the store: the
// normalized identifier plus the decoded payload fields.
type StoredDocument struct {
	ID     DocumentID
	Fields map[string]any
}

// Store is the document store adapter. It is constructed once at startup and
// shared by reference across request handlers; handlers never reassign it.
type Store struct {
	db       *gorm.DB
	database string
	initErr  error
}

// OpenStore connects to the configured database. Missing configuration or a
// failed connection yields a degraded store rather than an error: the process
// keeps serving, and every store operation fails with ErrUnavailable.
func OpenStore(cfg *config.Config) *Store {
	if !cfg.DatabaseConfigured() {
		log.Println("Warning: DATABASE_URL or DATABASE_NAME not set, store is unavailable")
		return &Store{initErr: ErrUnavailable}
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Printf("Warning: failed to connect to database, store is unavailable: %v", err)
		return &Store{initErr: fmt.Errorf("store unavailable: %w", err)}
	}

	store, err := NewStore(db, cfg.DatabaseName)
	if err != nil {
		log.Printf("Warning: failed to initialize store: %v", err)
		return &Store{initErr: fmt.Errorf("store unavailable: %w", err)}
	}

	log.Println("Connected to document store successfully")
	return store
}

// NewStore builds a Store over an already-open GORM handle and runs the
// schema migration. Tests use this with an in-memory sqlite handle.
func NewStore(db *gorm.DB, databaseName string) (*Store, error) {
	if err := db.AutoMigrate(&models.Document{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &Store{db: db, database: databaseName}, nil
}

// Available reports whether the store accepted its configuration and
// connected. Operations on an unavailable store fail with ErrUnavailable.
func (s *Store) Available() bool {
	return s.db != nil
}

// Err returns the reason the store is unavailable, or nil.
func (s *Store) Err() error {
	return s.initErr
}

// DatabaseName returns the logical database this store is scoped to.
func (s *Store) DatabaseName() string {
	return s.database
}

// CreateDocument inserts one record into the named collection and returns the
// store-assigned identifier, normalized to a string.
func (s *Store) CreateDocument(collection string, record any) (DocumentID, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}
	if collection == "" {
		return "", errors.New("collection name must not be empty")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	doc := models.Document{
		Database:   s.database,
		Collection: collection,
		Data:       string(data),
	}
	if err := s.db.Create(&doc).Error; err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	return normalizeID(doc.ID), nil
}

// GetDocuments reads at most limit documents from the named collection in
// insertion order. The underlying store guarantees no particular order, so
// callers must not rely on it.
func (s *Store) GetDocuments(collection string, limit int) ([]StoredDocument, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	if limit < 0 {
		return nil, errors.New("limit must not be negative")
	}
	if limit == 0 {
		return []StoredDocument{}, nil
	}

	var rows []models.Document
	err := s.db.
		Where("database = ? AND collection = ?", s.database, collection).
		Order("id").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("read from %s: %w", collection, err)
	}

	docs := make([]StoredDocument, 0, len(rows))
	for _, row := range rows {
		fields := map[string]any{}
		if err := json.Unmarshal([]byte(row.Data), &fields); err != nil {
			log.Printf("Error decoding document %d: %v", row.ID, err)
			continue
		}
		docs = append(docs, StoredDocument{ID: normalizeID(row.ID), Fields: fields})
	}
	return docs, nil
}

// Collections lists up to limit distinct collection names in the logical
// database, for the diagnostic endpoint.
func (s *Store) Collections(limit int) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}

	var names []string
	err := s.db.Model(&models.Document{}).
		Where("database = ?", s.database).
		Distinct("collection").
		Order("collection").
		Limit(limit).
		Pluck("collection", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Ping verifies the connection is alive.
func (s *Store) Ping() error {
	if !s.Available() {
		return ErrUnavailable
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("store connection: %w", err)
	}
	return sqlDB.Ping()
}

func (s *Store) Close() error {
	if !s.Available() {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func normalizeID(id uint) DocumentID {
	return DocumentID(strconv.FormatUint(uint64(id), 10))
}
