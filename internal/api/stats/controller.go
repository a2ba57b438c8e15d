package stats

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pokerbase/bankroll-api/internal/loaders"
	"github.com/pokerbase/bankroll-api/internal/types"
	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Controller serves the aggregate read models: per-breakdown user_stats rows
// and the profile-level overall summary.
type Controller struct {
	db *loaders.PostgresClient
}

func NewController(db *loaders.PostgresClient) *Controller {
	return &Controller{db: db}
}

func (ctrl *Controller) List(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Bad Request",
			Message:   "userId is required",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	gameType := c.Query("gameType")
	if gameType != "" && !types.GameType(gameType).Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Bad Request",
			Message:   "invalid game type",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	stats, err := ctrl.db.ListUserStats(c.Request.Context(), userID, gameType)
	if err != nil {
		utils.Zlog.Error("Failed to list user stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Internal Server Error",
			Message:   err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}
	if stats == nil {
		stats = []types.UserStats{}
	}
	c.JSON(http.StatusOK, stats)
}

func (ctrl *Controller) Overall(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Bad Request",
			Message:   "userId is required",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	summary, err := ctrl.db.OverallStats(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, loaders.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:     "Not Found",
				Message:   err.Error(),
				Timestamp: time.Now().UTC(),
			})
			return
		}
		utils.Zlog.Error("Failed to load overall stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "Internal Server Error",
			Message:   err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}
	c.JSON(http.StatusOK, summary)
}
