package profiles

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

type Controller struct {
	db *loaders.PostgresClient
}

func NewController(db *loaders.PostgresClient) *Controller {
	return &Controller{db: db}
}

func (ctrl *Controller) respondError(c *gin.Context, err error) {
	if errors.Is(err, loaders.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:     "Not Found",
			Message:   err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}
	utils.Zlog.Error("Profile request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "Internal Server Error",
		Message:   err.Error(),
		Timestamp: time.Now().UTC(),
	})
}

func (ctrl *Controller) Get(c *gin.Context) {
	profile, err := ctrl.db.GetProfile(c.Request.Context(), c.Param("userId"))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctrl *Controller) Update(c *gin.Context) {
	var dto types.UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Bad Request",
			Message:   err.Error(),
			Timestamp: time.Now().UTC(),
		})
		return
	}
	if dto.DefaultGameType != nil && !dto.DefaultGameType.Valid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:     "Bad Request",
			Message:   "invalid default game type",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	profile, err := ctrl.db.UpdateProfile(c.Request.Context(), c.Param("userId"), dto)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetPublic looks up a shared profile by its public username.
func (ctrl *Controller) GetPublic(c *gin.Context) {
	profile, err := ctrl.db.GetPublicProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
