package imports

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

// Controller handles HTTP requests for CSV imports
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// Process accepts a raw CSV export and starts an import job.
func (ctrl *Controller) Process(c *gin.Context) {
	var req ImportRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Zlog.Error("Invalid import request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Bad Request",
			Message:   err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}

	response, err := ctrl.service.Process(c.Request.Context(), req)
	if err != nil {
		utils.Zlog.Error("Failed to start import", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:     "Service Unavailable",
			Message:   err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}
	c.JSON(http.StatusOK, response)
}

// Status reports progress for a previously started import job.
func (ctrl *Controller) Status(c *gin.Context) {
	jobID := c.Param("jobId")

	response, ok := ctrl.service.JobStatus(jobID)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:     "Not Found",
			Message:   "unknown import job",
			Timestamp: time.Now().UTC(),
		})
		return
	}
	c.JSON(http.StatusOK, response)
}
