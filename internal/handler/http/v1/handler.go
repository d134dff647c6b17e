package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/waste_dashboard/internal/config"
	"github.com/shenikar/waste_dashboard/internal/csvsource"
	"github.com/shenikar/waste_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	collectorService service.CollectorService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(dashboardService service.DashboardService, collectorService service.CollectorService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		collectorService: collectorService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// rejectOversized отклоняет тело больше MaxUploadBytes. Для тел без Content-Length
// ограничение применяет MaxBytesReader при чтении.
func (h *Handler) rejectOversized(c *gin.Context, log *logrus.Entry) bool {
	if c.Request.ContentLength > h.cfg.MaxUploadBytes {
		log.WithField("content_length", c.Request.ContentLength).Warn("Upload too large")
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
		return true
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes)
	return false
}

// @Summary Upload a CSV file with bin readings
// @Description Parse the uploaded CSV, replace the current dataset and return the aggregated dashboard. Requires API key.
// @Tags Dashboard
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "CSV file with Locality, Waste_Type, Confidence(%) columns"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Missing file or malformed CSV"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 413 {object} map[string]string "Upload too large"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/upload [post]
func (h *Handler) uploadCSV(c *gin.Context) {
	log := h.logger.WithField("method", "uploadCSV")
	if h.rejectOversized(c, log) {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			log.WithError(err).Warn("Upload too large")
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
			return
		}
		log.WithError(err).Warn("Failed to read uploaded file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "csv file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	raws, err := csvsource.ReadRecords(file)
	if err != nil {
		log.WithError(err).Warn("Failed to parse CSV")
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed csv"})
		return
	}

	log = log.WithField("filename", fileHeader.Filename).WithField("rows", len(raws))
	dashboard, err := h.dashboardService.Ingest(c.Request.Context(), raws)
	if err != nil {
		log.WithError(err).Error("Failed to ingest records in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDashboardResponse(dashboard))
}

// @Summary Upload bin readings as JSON
// @Description Replace the current dataset with the given records and return the aggregated dashboard. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param records body UploadRecordsRequest true "Records upload request"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/records [post]
func (h *Handler) uploadRecords(c *gin.Context) {
	var input UploadRecordsRequest
	log := h.logger.WithField("method", "uploadRecords")
	if h.rejectOversized(c, log) {
		return
	}

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

	dashboard, err := h.dashboardService.Ingest(c.Request.Context(), DTOToRawRecords(input))
	if err != nil {
		log.WithError(err).Error("Failed to ingest records in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDashboardResponse(dashboard))
}

// @Summary Get the latest dashboard
// @Description Re-aggregate the latest uploaded dataset, optionally filtered by locality and waste type.
// @Tags Dashboard
// @Produce json
// @Param locality query []string false "Locality filter (repeatable)" collectionFormat(multi)
// @Param waste_type query []string false "Waste type filter (repeatable)" collectionFormat(multi)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 404 {object} map[string]string "No data uploaded yet"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	var query DashboardQuery
	log := h.logger.WithField("method", "getDashboard")

	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dashboard, err := h.dashboardService.Latest(c.Request.Context(), QueryToFilter(query))
	if err != nil {
		if errors.Is(err, service.ErrNoSnapshot) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no data uploaded yet"})
			return
		}
		log.WithError(err).Error("Failed to get dashboard from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDashboardResponse(dashboard))
}

// @Summary Get the collector leaderboard
// @Description Collectors ranked by points, highest first.
// @Tags Collectors
// @Produce json
// @Success 200 {array} LeaderboardEntryResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /collectors/leaderboard [get]
func (h *Handler) getLeaderboard(c *gin.Context) {
	log := h.logger.WithField("method", "getLeaderboard")

	entries, err := h.collectorService.Leaderboard(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get leaderboard from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, EntriesToLeaderboardResponse(entries))
}

// @Summary Get a collector profile
// @Description Get a single collector by name.
// @Tags Collectors
// @Produce json
// @Param name path string true "Collector name"
// @Success 200 {object} CollectorResponse
// @Failure 404 {object} map[string]string "Collector not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /collectors/{name} [get]
func (h *Handler) getCollector(c *gin.Context) {
	name := c.Param("name")
	log := h.logger.WithField("method", "getCollector").WithField("name", name)

	collector, err := h.collectorService.GetCollector(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrCollectorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "collector not found"})
			return
		}
		log.WithError(err).Error("Failed to get collector from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToCollectorResponse(collector))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
