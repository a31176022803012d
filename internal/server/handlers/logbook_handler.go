package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ProMBZ/Teacher-Project/internal/domain/models"
	"github.com/ProMBZ/Teacher-Project/internal/repository/memory"
	"github.com/ProMBZ/Teacher-Project/internal/service/logbook"
	"github.com/ProMBZ/Teacher-Project/internal/service/reminder"
	"github.com/ProMBZ/Teacher-Project/internal/service/report"
)

// LogbookService describes the operations the HTTP layer can perform.
type LogbookService interface {
	Submit(ctx context.Context, sessionID, text string) (logbook.SubmitResult, error)
	Records(sessionID string) []models.FinalizedRecord
	StoreFor(sessionID string) memory.Repository
}

// LogbookHandler exposes the interactive logging flow over HTTP.
type LogbookHandler struct {
	svc         LogbookService
	renderer    *report.Renderer
	reminderSvc *reminder.Service
	logger      *zap.Logger
	now         func() time.Time
}

// NewLogbookHandler constructs the HTTP handler adapter.
func NewLogbookHandler(svc LogbookService, renderer *report.Renderer, reminderSvc *reminder.Service, logger *zap.Logger) *LogbookHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogbookHandler{
		svc:         svc,
		renderer:    renderer,
		reminderSvc: reminderSvc,
		logger:      logger,
		now:         time.Now,
	}
}

// SubmitEntry ingests one conversational turn and replies with either the
// missing-fields list or the finalized record and acknowledgement.
func (h *LogbookHandler) SubmitEntry(c *gin.Context) {
	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid entry payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		if errors.Is(err, logbook.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please type something first"})
			return
		}
		h.logger.Error("failed processing entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process entry"})
		return
	}

	if !result.Complete {
		c.JSON(http.StatusOK, models.EntryResponse{
			Status:  "incomplete",
			Missing: result.Missing,
		})
		return
	}

	c.JSON(http.StatusOK, models.EntryResponse{
		Status: "complete",
		Reply:  result.Reply,
		Record: result.Record,
	})
}

// ListEntries returns every record stored so far for the session.
func (h *LogbookHandler) ListEntries(c *gin.Context) {
	records := h.svc.Records(c.Query("session_id"))
	c.JSON(http.StatusOK, models.EntryListResponse{
		Count:   len(records),
		Records: records,
	})
}

// DownloadReport streams the PDF export. The download is only offered once
// at least one record exists.
func (h *LogbookHandler) DownloadReport(c *gin.Context) {
	records := h.svc.Records(c.Query("session_id"))
	if len(records) == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "no records to download yet"})
		return
	}

	pdfBytes, err := h.renderer.RenderPDF(records)
	if err != nil {
		h.logger.Error("failed rendering report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to render report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	c.Data(http.StatusOK, report.ContentType, pdfBytes)
}

// CheckReminder reports whether the end-of-day reminder is due.
func (h *LogbookHandler) CheckReminder(c *gin.Context) {
	store := h.svc.StoreFor(c.Query("session_id"))

	resp := models.ReminderResponse{}
	if h.reminderSvc.Due(h.now(), store) {
		resp.Due = true
		resp.Message = reminder.Message
	}

	c.JSON(http.StatusOK, resp)
}
