package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crime_file_system/internal/models"
	"github.com/shenikar/crime_file_system/internal/service"
	"github.com/shenikar/crime_file_system/internal/store"
	appvalidator "github.com/shenikar/crime_file_system/pkg/validator"
	"github.com/sirupsen/logrus"
)

// maxImportBytes ограничивает размер импортируемого файла
const maxImportBytes = 10 << 20

type Handler struct {
	recordService service.RecordService
	logger        *logrus.Logger
	validate      *validator.Validate
}

func NewHandler(recordService service.RecordService, logger *logrus.Logger) *Handler {
	return &Handler{
		recordService: recordService,
		logger:        logger,
		validate:      appvalidator.New(),
	}
}

// @Summary Create a new crime record
// @Description Create a new crime record. Title, type, date, status and location are required.
// @Tags Records
// @Accept json
// @Produce json
// @Param record body CreateRecordRequest true "Record creation request"
// @Success 201 {object} models.Record
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /records [post]
func (h *Handler) createRecord(c *gin.Context) {
	var input CreateRecordRequest
	log := h.logger.WithField("method", "createRecord")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), DTOToRecordFields(input))
	if err != nil {
		log.WithError(err).Error("Failed to create record in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// @Summary Get the filtered list of records
// @Description Get the records matching the current filter, in insertion order.
// @Tags Records
// @Produce json
// @Success 200 {array} models.Record
// @Router /records [get]
func (h *Handler) listRecords(c *gin.Context) {
	c.JSON(http.StatusOK, h.recordService.ListRecords(c.Request.Context()))
}

// @Summary Get record by ID
// @Description Get a single record by its ID.
// @Tags Records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.Record
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /records/{id} [get]
func (h *Handler) getRecord(c *gin.Context) {
	id := models.ParseRecordID(c.Param("id"))
	log := h.logger.WithField("method", "getRecord").WithField("id", id)

	record, err := h.recordService.GetRecord(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// @Summary Update an existing record
// @Description Update only the fields present in the body. Null or empty values overwrite.
// @Tags Records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param record body UpdateRecordRequest true "Record patch"
// @Success 200 {object} models.Record
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /records/{id} [put]
func (h *Handler) updateRecord(c *gin.Context) {
	id := models.ParseRecordID(c.Param("id"))
	log := h.logger.WithField("method", "updateRecord").WithField("id", id)

	var input UpdateRecordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := validatePatch(h.validate, input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.recordService.UpdateRecord(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// @Summary Delete a record
// @Description Delete a record by its ID. The record is removed immediately.
// @Tags Records
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /records/{id} [delete]
func (h *Handler) deleteRecord(c *gin.Context) {
	id := models.ParseRecordID(c.Param("id"))
	log := h.logger.WithField("method", "deleteRecord").WithField("id", id)

	if err := h.recordService.DeleteRecord(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get current filter
// @Tags Filter
// @Produce json
// @Success 200 {object} models.FilterCriteria
// @Router /filter [get]
func (h *Handler) getFilter(c *gin.Context) {
	c.JSON(http.StatusOK, h.recordService.Dashboard(c.Request.Context()).Criteria)
}

// @Summary Set filter criteria
// @Description Replace the current search and filter criteria and return the filtered records.
// @Tags Filter
// @Accept json
// @Produce json
// @Param filter body FilterRequest true "Filter criteria"
// @Success 200 {array} models.Record
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Router /filter [put]
func (h *Handler) setFilter(c *gin.Context) {
	var input FilterRequest
	log := h.logger.WithField("method", "setFilter")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.recordService.SetFilter(c.Request.Context(), DTOToCriteria(input)))
}

// @Summary Clear filter criteria
// @Tags Filter
// @Produce json
// @Success 200 {array} models.Record
// @Router /filter [delete]
func (h *Handler) clearFilter(c *gin.Context) {
	c.JSON(http.StatusOK, h.recordService.ClearFilter(c.Request.Context()))
}

// @Summary Get statistics counters
// @Tags Views
// @Produce json
// @Success 200 {object} models.Stats
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.recordService.Dashboard(c.Request.Context()).Stats)
}

// @Summary Get map markers
// @Description One marker per record that has both coordinates.
// @Tags Views
// @Produce json
// @Success 200 {array} models.Marker
// @Router /map/markers [get]
func (h *Handler) getMarkers(c *gin.Context) {
	c.JSON(http.StatusOK, h.recordService.Dashboard(c.Request.Context()).Markers)
}

// @Summary Get chart data
// @Tags Views
// @Produce json
// @Success 200 {object} models.Charts
// @Router /charts [get]
func (h *Handler) getCharts(c *gin.Context) {
	c.JSON(http.StatusOK, h.recordService.Dashboard(c.Request.Context()).Charts)
}

// @Summary Get all derived views
// @Tags Views
// @Produce json
// @Success 200 {object} models.Dashboard
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.recordService.Dashboard(c.Request.Context()))
}

// @Summary Export records
// @Description Download the whole collection as a JSON file named with the current date.
// @Tags Records
// @Produce json
// @Success 200 {array} models.Record
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /records/export [get]
func (h *Handler) exportRecords(c *gin.Context) {
	log := h.logger.WithField("method", "exportRecords")

	file, err := h.recordService.Export(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to export records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	c.Data(http.StatusOK, "application/json", file.Data)
}

// @Summary Import records
// @Description Replace the whole collection with an uploaded JSON array (multipart field "file" or raw body).
// @Tags Records
// @Accept json,mpfd
// @Produce json
// @Param file formData file false "Exported records file"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} ErrorResponse "Malformed data"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /records/import [post]
func (h *Handler) importRecords(c *gin.Context) {
	log := h.logger.WithField("method", "importRecords")

	payload, err := readImportPayload(c)
	if err != nil {
		log.WithError(err).Warn("Failed to read import payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read import file"})
		return
	}

	count, err := h.recordService.Import(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ImportResponse{Imported: count})
}

// @Summary Get active notifications
// @Description Notifications disappear automatically after a short delay.
// @Tags Notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications [get]
func (h *Handler) getNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.recordService.Notifications(c.Request.Context()))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError сопоставляет ошибки сервиса с HTTP-статусами
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.WithError(err).Warn("Record not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case store.IsMalformed(err):
		log.WithError(err).Warn("Malformed import data")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data format: expected an array of records"})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// readImportPayload читает файл из multipart-поля file или тело запроса целиком
func readImportPayload(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)

	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	return io.ReadAll(c.Request.Body)
}
