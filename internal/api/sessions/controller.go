package sessions

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pokerbase/bankroll-api/internal/loaders"
	"github.com/pokerbase/bankroll-api/internal/types"
	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:     "Bad Request",
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func serviceError(c *gin.Context, err error) {
	if errors.Is(err, loaders.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:     "Not Found",
			Message:   err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}
	utils.Zlog.Error("Session request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "Internal Server Error",
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
	})
}

func (ctrl *Controller) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	session, err := ctrl.service.Create(c.Request.Context(), req.UserID, req.Session)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (ctrl *Controller) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		badRequest(c, "userId is required")
		return
	}

	filter := loaders.SessionFilter{
		GameType:     c.Query("gameType"),
		Variant:      c.Query("variant"),
		LocationType: c.Query("locationType"),
		StartDate:    c.Query("startDate"),
		EndDate:      c.Query("endDate"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		filter.Limit = limit
	}

	sessions, err := ctrl.service.List(c.Request.Context(), userID, filter)
	if err != nil {
		serviceError(c, err)
		return
	}
	if sessions == nil {
		sessions = []types.PokerSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

func (ctrl *Controller) Get(c *gin.Context) {
	session, err := ctrl.service.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (ctrl *Controller) Update(c *gin.Context) {
	var dto types.UpdateSessionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		badRequest(c, err.Error())
		return
	}

	session, err := ctrl.service.Update(c.Request.Context(), c.Param("sessionId"), dto)
	if err != nil {
		if errors.Is(err, loaders.ErrNotFound) {
			serviceError(c, err)
			return
		}
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, session)
}

func (ctrl *Controller) Delete(c *gin.Context) {
	if err := ctrl.service.Delete(c.Request.Context(), c.Param("sessionId")); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (ctrl *Controller) AddUpdate(c *gin.Context) {
	var req CreateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	update, err := ctrl.service.AddUpdate(c.Request.Context(), c.Param("sessionId"), req)
	if err != nil {
		if errors.Is(err, loaders.ErrNotFound) {
			serviceError(c, err)
			return
		}
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, update)
}

func (ctrl *Controller) ListUpdates(c *gin.Context) {
	updates, err := ctrl.service.ListUpdates(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		serviceError(c, err)
		return
	}
	if updates == nil {
		updates = []types.SessionUpdate{}
	}
	c.JSON(http.StatusOK, updates)
}

func (ctrl *Controller) DeleteUpdate(c *gin.Context) {
	if err := ctrl.service.DeleteUpdate(c.Request.Context(), c.Param("updateId")); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
