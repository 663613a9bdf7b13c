package handlers

import (
	"io"
	"net/http"
	"strings"

	"inboxzero-be/internal/ingest"
	"inboxzero-be/internal/models"
	"inboxzero-be/internal/store"

	"github.com/gin-gonic/gin"
)

type RecordsHandler struct {
	store *store.Store
}

func NewRecordsHandler(st *store.Store) *RecordsHandler {
	return &RecordsHandler{store: st}
}

// UploadCSV godoc
// @Summary Load email records from a CSV upload
// @Description Replaces the working record set with the parsed rows. Rows with unparseable dates are dropped silently; the response reports how many rows survived.
// @Tags records
// @Accept mpfd
// @Produce json
// @Param file formData file false "CSV file (raw text body also accepted)"
// @Success 200 {object} models.IngestResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /records/csv [post]
func (h *RecordsHandler) UploadCSV(c *gin.Context) {
	text, err := readCSVBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_upload",
			Message: "Could not read CSV payload",
		})
		return
	}
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "empty_csv",
			Message: "CSV payload is empty",
		})
		return
	}

	rows, dataLines := ingest.ParseCSV(text)
	h.store.Replace(rows)

	c.JSON(http.StatusOK, models.IngestResponse{
		Parsed:    len(rows),
		DataLines: dataLines,
		Metrics:   h.store.Metrics(),
	})
}

// LoadSample godoc
// @Summary Load generated sample data
// @Tags records
// @Produce json
// @Success 200 {object} models.IngestResponse
// @Router /records/sample [post]
func (h *RecordsHandler) LoadSample(c *gin.Context) {
	rows := ingest.SampleData()
	h.store.Replace(rows)

	c.JSON(http.StatusOK, models.IngestResponse{
		Parsed:    len(rows),
		DataLines: len(rows),
		Metrics:   h.store.Metrics(),
	})
}

// Clear godoc
// @Summary Reset the working record set
// @Tags records
// @Produce json
// @Success 200 {object} models.IngestResponse
// @Router /records [delete]
func (h *RecordsHandler) Clear(c *gin.Context) {
	h.store.Clear()

	c.JSON(http.StatusOK, models.IngestResponse{
		Metrics: h.store.Metrics(),
	})
}

// readCSVBody accepts either a multipart "file" field or the raw request
// body as CSV text.
func readCSVBody(c *gin.Context) (string, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return "", err
		}
		f, err := fileHeader.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
