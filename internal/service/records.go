package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/crime_file_system/internal/aggregate"
	"github.com/shenikar/crime_file_system/internal/config"
	"github.com/shenikar/crime_file_system/internal/filter"
	"github.com/shenikar/crime_file_system/internal/models"
	"github.com/shenikar/crime_file_system/internal/notify"
	"github.com/shenikar/crime_file_system/internal/store"
	"github.com/shenikar/crime_file_system/internal/view"
	"github.com/shenikar/crime_file_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// Тексты уведомлений для пользователя
const (
	msgSaved         = "Crime record saved successfully!"
	msgDeleted       = "Crime record deleted successfully!"
	msgNotFound      = "Crime record not found."
	msgImported      = "Data imported successfully!"
	msgImportFailed  = "Error importing data. Please check the file format."
	msgExported      = "Data exported successfully!"
	msgPersistFailed = "Changes could not be saved to storage."
)

// recordService - контекст приложения: хранилище, фильтр, координатор представлений
// и внешние границы. Мьютекс гарантирует единственного писателя.
type recordService struct {
	mu          sync.Mutex
	store       *store.RecordStore
	filter      *filter.Engine
	coordinator *view.Coordinator
	snapshot    *view.Snapshot
	notifier    *notify.Notifier
	repo        SnapshotRepository
	publisher   webhook.WebhookPublisher
	logger      *logrus.Logger
	cfg         *config.Config
	now         func() time.Time
}

func NewRecordService(repo SnapshotRepository, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher) RecordService {
	if publisher == nil {
		publisher = webhook.NopPublisher{}
	}
	rules := aggregate.DefaultAreaRules
	if len(cfg.AreaKeywords) > 0 {
		rules = aggregate.RulesFromKeywords(cfg.AreaKeywords)
	}
	snapshot := view.NewSnapshot()
	s := &recordService{
		store:       store.NewRecordStore(nil),
		filter:      filter.NewEngine(),
		coordinator: view.NewCoordinator(snapshot, snapshot, snapshot, snapshot, rules),
		snapshot:    snapshot,
		notifier:    notify.New(cfg.NotificationTTL, nil),
		repo:        repo,
		publisher:   publisher,
		logger:      logger,
		cfg:         cfg,
		now:         time.Now,
	}
	s.refresh()
	return s
}

// Bootstrap загружает сохраненную коллекцию; пустой слот заполняется демо-данными
func (s *recordService) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "records",
		"method":  "Bootstrap",
	})

	payload, err := s.repo.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load records snapshot")
		return fmt.Errorf("service: could not load records: %w", err)
	}

	if payload == nil {
		if !s.cfg.SeedSampleData {
			log.Info("Snapshot is empty, starting with an empty collection")
			s.refresh()
			return nil
		}
		change := s.store.Replace(SampleRecords())
		log.WithField("count", change.Total).Info("Snapshot is empty, seeding sample records")
		s.persist(ctx, log)
		s.refresh()
		return nil
	}

	change, err := s.store.Import(payload)
	if err != nil {
		log.WithError(err).Error("Stored snapshot is malformed")
		return fmt.Errorf("service: could not restore records: %w", err)
	}
	log.WithField("count", change.Total).Info("Records restored from snapshot")
	s.refresh()
	return nil
}

// CreateRecord добавляет новую запись
func (s *recordService) CreateRecord(ctx context.Context, fields models.RecordFields) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "records",
		"method":  "CreateRecord",
		"title":   fields.Title,
	})
	log.Info("Attempting to create a new record")

	record, change := s.store.Create(fields)
	s.afterMutation(ctx, log, change, msgSaved)

	log.WithField("record_id", record.ID).Info("Record created successfully")
	return record, nil
}

// GetRecord возвращает запись по id
func (s *recordService) GetRecord(_ context.Context, id models.RecordID) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.store.Get(id)
	if !ok {
		return models.Record{}, fmt.Errorf("service: could not get record %s: %w", id, store.ErrNotFound)
	}
	return record, nil
}

// UpdateRecord меняет только поля, заданные в патче
func (s *recordService) UpdateRecord(ctx context.Context, id models.RecordID, patch models.RecordPatch) (models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service":   "records",
		"method":    "UpdateRecord",
		"record_id": id,
	})
	log.Info("Attempting to update a record")

	record, change, err := s.store.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.WithError(err).Warn("Attempted to update a non-existent record")
			s.notifier.Info(msgNotFound)
		}
		return models.Record{}, fmt.Errorf("service: could not update record: %w", err)
	}

	s.afterMutation(ctx, log, change, msgSaved)
	log.Info("Record updated successfully")
	return record, nil
}

// DeleteRecord удаляет запись; повторное удаление возвращает ErrNotFound
func (s *recordService) DeleteRecord(ctx context.Context, id models.RecordID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service":   "records",
		"method":    "DeleteRecord",
		"record_id": id,
	})
	log.Info("Attempting to delete a record")

	removed, change := s.store.Delete(id)
	if !removed {
		log.Warn("Attempted to delete a non-existent record")
		s.notifier.Info(msgNotFound)
		return fmt.Errorf("service: could not delete record %s: %w", id, store.ErrNotFound)
	}

	s.afterMutation(ctx, log, change, msgDeleted)
	log.Info("Record deleted successfully")
	return nil
}

// ListRecords возвращает последний отфильтрованный список.
// Чтение идет под тем же мьютексом, что и мутации, поэтому пересчет виден только целиком.
func (s *recordService) ListRecords(_ context.Context) []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Dashboard().Records
}

// SetFilter меняет условия фильтрации и пересчитывает представления
func (s *recordService) SetFilter(_ context.Context, criteria models.FilterCriteria) []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter.Set(criteria)
	s.coordinator.FilterChanged(s.store.All(), s.filter.Criteria())
	return s.snapshot.Dashboard().Records
}

// ClearFilter сбрасывает все условия фильтрации
func (s *recordService) ClearFilter(ctx context.Context) []models.Record {
	return s.SetFilter(ctx, models.FilterCriteria{})
}

// Dashboard возвращает все производные представления
func (s *recordService) Dashboard(_ context.Context) models.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Dashboard()
}

// Export сериализует коллекцию в файл с текущей датой в имени
func (s *recordService) Export(_ context.Context) (models.ExportFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Serialize()
	if err != nil {
		s.logger.WithError(err).WithField("method", "Export").Error("Failed to serialize records")
		return models.ExportFile{}, fmt.Errorf("service: could not export records: %w", err)
	}
	s.notifier.Success(msgExported)
	return models.ExportFile{
		Name: ExportFileName(s.now()),
		Data: data,
	}, nil
}

// Import целиком заменяет коллекцию; при ошибке разбора состояние не меняется
func (s *recordService) Import(ctx context.Context, payload []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "records",
		"method":  "Import",
		"bytes":   len(payload),
	})
	log.Info("Attempting to import records")

	change, err := s.store.Import(payload)
	if err != nil {
		log.WithError(err).Warn("Import payload rejected")
		s.notifier.Error(msgImportFailed)
		return 0, fmt.Errorf("service: could not import records: %w", err)
	}

	s.afterMutation(ctx, log, change, msgImported)
	log.WithField("count", change.Total).Info("Records imported successfully")
	return change.Total, nil
}

// Notifications возвращает активные уведомления
func (s *recordService) Notifications(_ context.Context) []models.Notification {
	return s.notifier.Active()
}

// afterMutation сохраняет снимок, публикует изменение и пересчитывает представления
func (s *recordService) afterMutation(ctx context.Context, log *logrus.Entry, change models.Change, message string) {
	persisted := s.persist(ctx, log)

	if err := s.publisher.Publish(ctx, webhook.NewChangeEvent(change, s.now())); err != nil {
		log.WithError(err).Warn("Failed to publish change event")
	}

	s.refresh()
	if persisted {
		s.notifier.Success(message)
	}
}

func (s *recordService) persist(ctx context.Context, log *logrus.Entry) bool {
	payload, err := s.store.Serialize()
	if err == nil {
		err = s.repo.Save(ctx, payload)
	}
	if err != nil {
		log.WithError(err).Error("Failed to persist records snapshot")
		s.notifier.Error(msgPersistFailed)
		return false
	}
	return true
}

func (s *recordService) refresh() {
	s.coordinator.RecordsChanged(s.store.All(), s.filter.Criteria())
}

// ExportFileName - имя файла экспорта вида crime-data-2024-02-15.json
func ExportFileName(at time.Time) string {
	return fmt.Sprintf("crime-data-%s.json", at.Format("2006-01-02"))
}
