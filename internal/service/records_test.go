package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/crime_file_system/internal/config"
	"github.com/shenikar/crime_file_system/internal/models"
	"github.com/shenikar/crime_file_system/internal/service/mocks"
	"github.com/shenikar/crime_file_system/internal/store"
	"github.com/shenikar/crime_file_system/internal/webhook"
	webhook_mocks "github.com/shenikar/crime_file_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// newTestRecordService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestRecordService(t *testing.T) (*recordService, *mocks.MockSnapshotRepository, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSnapshotRepository(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		SeedSampleData:  true,
		NotificationTTL: 5 * time.Second,
	}

	svc := NewRecordService(repoMock, logger, cfg, webhookMock).(*recordService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repoMock, webhookMock
}

// seededService возвращает сервис с восемью демонстрационными записями
func seededService(t *testing.T) (*recordService, *mocks.MockSnapshotRepository, *webhook_mocks.MockWebhookPublisher) {
	svc, repoMock, webhookMock := newTestRecordService(t)
	ctx := context.Background()

	repoMock.EXPECT().Load(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	require.NoError(t, svc.Bootstrap(ctx))
	return svc, repoMock, webhookMock
}

func TestBootstrap_SeedsSampleData(t *testing.T) {
	svc, _, _ := seededService(t)

	dashboard := svc.Dashboard(context.Background())
	assert.Len(t, dashboard.Records, 8)
	assert.Equal(t, models.Stats{Total: 8, Open: 2, Solved: 2}, dashboard.Stats)
	assert.Len(t, dashboard.Markers, 8)
	assert.Equal(t, []string{"Theft", "Assault", "Burglary", "Vandalism", "Fraud"}, dashboard.Charts.ByType.Series.Labels)
	assert.Equal(t, []int{2, 2, 2, 1, 1}, dashboard.Charts.ByType.Series.Values)
}

func TestBootstrap_RestoresSnapshot(t *testing.T) {
	svc, repoMock, _ := newTestRecordService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		Load(ctx).
		Return([]byte(`[{"id":"a-1","title":"Stolen bike","type":"Theft","date":"2024-01-01T10:00:00","status":"Open","location":"Main St"}]`), nil).
		Times(1)

	require.NoError(t, svc.Bootstrap(ctx))
	records := svc.ListRecords(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, models.StringID("a-1"), records[0].ID)
	assert.Equal(t, models.Stats{Total: 1, Open: 1}, svc.Dashboard(ctx).Stats)
}

func TestBootstrap_EmptyWithoutSeed(t *testing.T) {
	svc, repoMock, _ := newTestRecordService(t)
	svc.cfg.SeedSampleData = false
	ctx := context.Background()

	repoMock.EXPECT().Load(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, svc.Bootstrap(ctx))
	assert.Empty(t, svc.ListRecords(ctx))
}

func TestBootstrap_LoadError(t *testing.T) {
	svc, repoMock, _ := newTestRecordService(t)
	ctx := context.Background()

	repoMock.EXPECT().Load(ctx).Return(nil, errors.New("connection refused")).Times(1)

	err := svc.Bootstrap(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not load records")
}

func TestCreateRecord_Success(t *testing.T) {
	svc, repoMock, webhookMock := seededService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.ChangeEvent) error {
			assert.Equal(t, models.ChangeCreated, event.Kind)
			assert.Equal(t, 9, event.Total)
			return nil
		}).Times(1)

	record, err := svc.CreateRecord(ctx, models.RecordFields{
		Title:      "Pickpocketing on 5th Avenue",
		Type:       "Theft",
		OccurredAt: models.ParseTimestamp("2024-02-20T12:00"),
		Status:     "Open",
		Location:   "5th Avenue, Midtown",
	})
	require.NoError(t, err)
	assert.False(t, record.ID.IsZero())

	dashboard := svc.Dashboard(ctx)
	assert.Len(t, dashboard.Records, 9)
	assert.Equal(t, 3, dashboard.Stats.Open)
	assert.Len(t, dashboard.Markers, 8) // у новой записи нет координат

	notifications := svc.Notifications(ctx)
	require.NotEmpty(t, notifications)
	assert.Equal(t, models.SeveritySuccess, notifications[len(notifications)-1].Severity)
}

func TestCreateRecord_SaveFailureKeepsRecord(t *testing.T) {
	svc, repoMock, webhookMock := seededService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("disk full")).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	_, err := svc.CreateRecord(ctx, models.RecordFields{Title: "x", Type: "Fraud", Status: "Open", Location: "Online"})
	require.NoError(t, err)
	assert.Len(t, svc.ListRecords(ctx), 9)

	notifications := svc.Notifications(ctx)
	require.NotEmpty(t, notifications)
	assert.Equal(t, models.SeverityError, notifications[len(notifications)-1].Severity)
}

func TestUpdateRecord_OnlyPatchedFields(t *testing.T) {
	svc, repoMock, webhookMock := seededService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	before, err := svc.GetRecord(ctx, models.NumericID(3))
	require.NoError(t, err)

	updated, err := svc.UpdateRecord(ctx, models.NumericID(3), models.RecordPatch{
		Status: models.Some("Solved"),
	})
	require.NoError(t, err)

	expected := before
	expected.Status = "Solved"
	assert.Equal(t, expected, updated)
	assert.Equal(t, models.Stats{Total: 8, Open: 1, Solved: 3}, svc.Dashboard(ctx).Stats)
}

func TestUpdateRecord_NotFound(t *testing.T) {
	svc, repoMock, webhookMock := seededService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateRecord(ctx, models.NumericID(999), models.RecordPatch{Title: models.Some("x")})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)

	notifications := svc.Notifications(ctx)
	require.NotEmpty(t, notifications)
	assert.Equal(t, models.SeverityInfo, notifications[len(notifications)-1].Severity)
}

func TestDeleteRecord_Idempotent(t *testing.T) {
	svc, repoMock, webhookMock := seededService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	require.NoError(t, svc.DeleteRecord(ctx, models.NumericID(1)))
	after := svc.ListRecords(ctx)

	err := svc.DeleteRecord(ctx, models.NumericID(1))
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Equal(t, after, svc.ListRecords(ctx))
	assert.Len(t, after, 7)
}

func TestImport_MalformedKeepsState(t *testing.T) {
	svc, repoMock, webhookMock := seededService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Import(ctx, []byte(`{"id": 1, "title": "not an array"}`))
	require.Error(t, err)
	assert.True(t, store.IsMalformed(err))
	assert.Len(t, svc.ListRecords(ctx), 8)

	notifications := svc.Notifications(ctx)
	require.NotEmpty(t, notifications)
	assert.Equal(t, models.SeverityError, notifications[len(notifications)-1].Severity)
}

func TestImport_ReplacesCollection(t *testing.T) {
	svc, repoMock, webhookMock := seededService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.ChangeEvent) error {
			assert.Equal(t, models.ChangeReplaced, event.Kind)
			return nil
		}).Times(1)

	count, err := svc.Import(ctx, []byte(`[{"id": 100, "title": "Imported", "type": "Fraud", "date": "2023-12-31T23:59:59", "status": "Closed", "location": "Online"}]`))
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	records := svc.ListRecords(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, "Imported", records[0].Title)
	assert.Equal(t, []string{"Dec 2023"}, svc.Dashboard(ctx).Charts.ByMonth.Series.Labels)
}

func TestExport_RoundTrip(t *testing.T) {
	svc, _, _ := seededService(t)
	ctx := context.Background()

	file, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "crime-data-2024-03-01.json", file.Name)

	restored, err := store.Deserialize(file.Data)
	require.NoError(t, err)
	assert.Equal(t, SampleRecords(), restored)
}

func TestSetFilter_TypeAndClear(t *testing.T) {
	svc, _, _ := seededService(t)
	ctx := context.Background()

	filtered := svc.SetFilter(ctx, models.FilterCriteria{Type: "Burglary"})
	require.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.Equal(t, "Burglary", r.Type)
	}
	// Статистика считается по всей коллекции
	assert.Equal(t, 8, svc.Dashboard(ctx).Stats.Total)
	assert.Equal(t, "Burglary", svc.Dashboard(ctx).Criteria.Type)

	assert.Len(t, svc.ClearFilter(ctx), 8)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "crime-data-2024-02-15.json", ExportFileName(time.Date(2024, 2, 15, 23, 0, 0, 0, time.UTC)))
}

func TestDashboard_ConsistentUnderConcurrentWrites(t *testing.T) {
	svc, repoMock, webhookMock := seededService(t)
	ctx := context.Background()

	repoMock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	webhookMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	lat, lng := 40.7, -74.0
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, err := svc.CreateRecord(ctx, models.RecordFields{
				Title:     "Concurrent",
				Type:      "Theft",
				Status:    "Open",
				Location:  "Midtown",
				Latitude:  &lat,
				Longitude: &lng,
			})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			d := svc.Dashboard(ctx)
			assert.Len(t, d.Records, d.Stats.Total)
			assert.Len(t, d.Markers, d.Stats.Total)
			assert.NotEmpty(t, svc.ListRecords(ctx))
		}
	}()
	wg.Wait()

	assert.Equal(t, 58, svc.Dashboard(ctx).Stats.Total)
}
