package service

import (
	"context"

	"github.com/shenikar/crime_file_system/internal/models"
)

// SnapshotRepository - слот для хранения сериализованной коллекции.
// Load возвращает nil без ошибки, если снимок еще не сохранялся.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}

// RecordService определяет контракт бизнес-логики работы с записями о происшествиях
type RecordService interface {
	Bootstrap(ctx context.Context) error
	CreateRecord(ctx context.Context, fields models.RecordFields) (models.Record, error)
	GetRecord(ctx context.Context, id models.RecordID) (models.Record, error)
	UpdateRecord(ctx context.Context, id models.RecordID, patch models.RecordPatch) (models.Record, error)
	DeleteRecord(ctx context.Context, id models.RecordID) error
	ListRecords(ctx context.Context) []models.Record
	SetFilter(ctx context.Context, criteria models.FilterCriteria) []models.Record
	ClearFilter(ctx context.Context) []models.Record
	Dashboard(ctx context.Context) models.Dashboard
	Export(ctx context.Context) (models.ExportFile, error)
	Import(ctx context.Context, payload []byte) (int, error)
	Notifications(ctx context.Context) []models.Notification
}
