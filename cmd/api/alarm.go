package main

import (
	"errors"
	"net/http"
	"time"

	"daycast/internal/screen"

	"github.com/gin-gonic/gin"
)

// ArmAlarmRequest picks the alarm time. Exactly one of Time or At is set.
type ArmAlarmRequest struct {
	Time string     `json:"time" example:"07:30"` // Wall-clock time in the location's time zone
	At   *time.Time `json:"at"`                   // Absolute RFC 3339 instant
}

// DisarmResponse reports whether an armed alarm was cancelled
type DisarmResponse struct {
	Disarmed bool `json:"disarmed" example:"true"`
}

// handleGetAlarm godoc
// @Summary Get the alarm state
// @Tags alarm
// @Produce json
// @Success 200 {object} screen.AlarmState
// @Router /alarm [get]
func (app *App) handleGetAlarm(c *gin.Context) {
	c.JSON(http.StatusOK, app.screen.Alarm())
}

// handleArmAlarm godoc
// @Summary Arm the alarm
// @Description Arm the single alarm, replacing any armed one. A wall-clock time is scheduled at its next occurrence.
// @Tags alarm
// @Accept json
// @Produce json
// @Param request body ArmAlarmRequest true "Alarm time"
// @Success 200 {object} screen.AlarmState
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /alarm [post]
func (app *App) handleArmAlarm(c *gin.Context) {
	var input ArmAlarmRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var (
		state screen.AlarmState
		err   error
	)
	switch {
	case input.At != nil && input.Time != "":
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "set either time or at, not both"})
		return
	case input.At != nil:
		state, err = app.screen.ArmAlarm(*input.At)
	case input.Time != "":
		state, err = app.screen.ArmAlarmAt(input.Time, app.now())
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "time or at is required"})
		return
	}

	if err != nil {
		if errors.Is(err, screen.ErrInvalidTime) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		app.logger.Error("failed to arm alarm", "error", err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// handleDisarmAlarm godoc
// @Summary Disarm the alarm
// @Tags alarm
// @Produce json
// @Success 200 {object} DisarmResponse
// @Router /alarm [delete]
func (app *App) handleDisarmAlarm(c *gin.Context) {
	c.JSON(http.StatusOK, DisarmResponse{Disarmed: app.screen.DisarmAlarm()})
}
