package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raagdna/raagdna/pkg/models"
)

const DefaultDBFile = "raagdna.sqlite3"
const errDBClientNil = "db client is nil"

type DBClient struct {
	DB *gorm.DB
	db *sql.DB
}

// RagaRow is the persisted form of a catalog entry.
type RagaRow struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	Name         string `gorm:"uniqueIndex:idx_raga_name" json:"name"`
	Arohana      string `json:"arohana"`
	Avarohana    string `json:"avarohana"`
	Description  string `json:"description"`
	SwaraSummary string `json:"swara_summary"`
	CreatedAt    time.Time
}

func (RagaRow) TableName() string { return "ragas" }

// NewDBClient opens the database at RAAGDNA_DB_PATH, or the default
// file in the working directory.
func NewDBClient() (*DBClient, error) {
	dbPath := os.Getenv("RAAGDNA_DB_PATH")
	if dbPath == "" {
		dbPath = DefaultDBFile
	}
	return NewDBClientWithPath(dbPath)
}

func NewDBClientWithPath(dbPath string) (*DBClient, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !os.IsExist(err) {
		if filepath.Dir(dbPath) != "." {
			return nil, fmt.Errorf("creating db dir: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&RagaRow{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &DBClient{DB: db, db: sqlDB}, nil
}

// NewSQLiteStorage opens (creating if necessary) a sqlite-backed
// catalog store at path. An empty path falls back to the env/default
// resolution of NewDBClient.
func NewSQLiteStorage(path string) (*DBClient, error) {
	if path == "" {
		return NewDBClient()
	}
	return NewDBClientWithPath(path)
}

func (c *DBClient) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// RegisterRaga inserts a catalog entry, returning the row ID. An entry
// with the same name (any case) is reused rather than duplicated.
func (c *DBClient) RegisterRaga(raga models.Raga) (string, error) {
	if c == nil || c.DB == nil {
		return "", errors.New(errDBClientNil)
	}

	var row RagaRow
	err := c.DB.Where("LOWER(name) = ?", strings.ToLower(raga.Name)).First(&row).Error
	if err == nil {
		return row.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("querying existing raga: %w", err)
	}

	row = RagaRow{
		ID:           uuid.NewString(),
		Name:         raga.Name,
		Arohana:      raga.Arohana,
		Avarohana:    raga.Avarohana,
		Description:  raga.Description,
		SwaraSummary: raga.SwaraSummary,
	}
	if err := c.DB.Create(&row).Error; err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
			strings.Contains(err.Error(), "constraint failed") {
			if fetchErr := c.DB.Where("LOWER(name) = ?", strings.ToLower(raga.Name)).First(&row).Error; fetchErr != nil {
				return "", fmt.Errorf("fetching raga after constraint violation: %w", fetchErr)
			}
			return row.ID, nil
		}
		return "", fmt.Errorf("creating raga: %w", err)
	}

	return row.ID, nil
}

// ListRagas returns every stored entry, oldest first, in domain form.
func (c *DBClient) ListRagas() ([]models.Raga, error) {
	if c == nil || c.DB == nil {
		return nil, errors.New(errDBClientNil)
	}
	var rows []RagaRow
	if err := c.DB.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing ragas: %w", err)
	}
	out := make([]models.Raga, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowToRaga(r))
	}
	return out, nil
}

// GetRagaByName looks up one entry, case-insensitively.
func (c *DBClient) GetRagaByName(name string) (*models.Raga, error) {
	if c == nil || c.DB == nil {
		return nil, errors.New(errDBClientNil)
	}
	var row RagaRow
	err := c.DB.Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("raga %q not found", name)
		}
		return nil, fmt.Errorf("querying raga: %w", err)
	}
	raga := rowToRaga(row)
	return &raga, nil
}

// DeleteRagaByName removes an entry, case-insensitively. Deleting a
// missing entry is not an error.
func (c *DBClient) DeleteRagaByName(name string) error {
	if c == nil || c.DB == nil {
		return errors.New(errDBClientNil)
	}
	return c.DB.Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		Delete(&RagaRow{}).Error
}

// Count reports how many entries are stored.
func (c *DBClient) Count() (int64, error) {
	if c == nil || c.DB == nil {
		return 0, errors.New(errDBClientNil)
	}
	var count int64
	if err := c.DB.Model(&RagaRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting ragas: %w", err)
	}
	return count, nil
}

func rowToRaga(r RagaRow) models.Raga {
	return models.Raga{
		Name:         r.Name,
		Arohana:      r.Arohana,
		Avarohana:    r.Avarohana,
		Description:  r.Description,
		SwaraSummary: r.SwaraSummary,
	}
}
