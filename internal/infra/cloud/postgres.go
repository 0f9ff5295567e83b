package cloud

import (
	"context"
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Documento sincronizado: uma linha por (coleção, id), payload JSONB.
// Mantém a semântica de documento inteiro — nunca update parcial de campo.
type cloudDocument struct {
	Collection string `gorm:"primaryKey;size:50"`
	DocID      string `gorm:"primaryKey;size:80"`
	Data       []byte `gorm:"type:jsonb"`

	UpdatedAt time.Time
}

func (cloudDocument) TableName() string {
	return "documents"
}

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&cloudDocument{}); err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) SaveDocument(ctx context.Context, collection, id string, doc []byte) error {
	row := cloudDocument{
		Collection: collection,
		DocID:      id,
		Data:       doc,
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *PostgresStore) GetDocument(ctx context.Context, collection, id string) ([]byte, error) {
	var row cloudDocument
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Data, nil
}

func (s *PostgresStore) GetAllDocuments(ctx context.Context, collection string) ([][]byte, error) {
	var rows []cloudDocument
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("doc_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	docs := make([][]byte, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, r.Data)
	}
	return docs, nil
}

func (s *PostgresStore) DeleteDocument(ctx context.Context, collection, id string) error {
	return s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&cloudDocument{}).Error
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Compile-time check
var _ DocumentStore = (*PostgresStore)(nil)
