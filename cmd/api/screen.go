package main

import (
	"errors"
	"net/http"

	"daycast/internal/screen"

	"github.com/gin-gonic/gin"
)

// ScreenStateResponse is the raw state behind the rendered screen
type ScreenStateResponse struct {
	Display screen.DisplayState `json:"display"`
	Toggled bool                `json:"toggled"`
	Alarm   screen.AlarmState   `json:"alarm"`
}

// ToggleResponse carries the new toggle value
type ToggleResponse struct {
	Toggled bool `json:"toggled" example:"true"`
}

// handleGetScreen godoc
// @Summary Get the rendered weather screen
// @Description Day cards for the resolved location, or the loading/error state when the forecast is not ready
// @Tags screen
// @Produce json
// @Success 200 {object} screen.ViewModel
// @Router /screen [get]
func (app *App) handleGetScreen(c *gin.Context) {
	c.JSON(http.StatusOK, app.screen.View())
}

// handleGetScreenState godoc
// @Summary Get the raw screen state
// @Description Display state, toggle flag and alarm snapshot
// @Tags screen
// @Produce json
// @Success 200 {object} ScreenStateResponse
// @Router /screen/state [get]
func (app *App) handleGetScreenState(c *gin.Context) {
	c.JSON(http.StatusOK, ScreenStateResponse{
		Display: app.screen.Display(),
		Toggled: app.screen.Toggled(),
		Alarm:   app.screen.Alarm(),
	})
}

// handleRetry godoc
// @Summary Reload location and forecast
// @Description Reset the screen to loading and run the location and forecast chain again. Failures are reported through the returned status.
// @Tags screen
// @Produce json
// @Success 200 {object} screen.ViewModel
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /screen/retry [post]
func (app *App) handleRetry(c *gin.Context) {
	err := app.screen.Retry(c.Request.Context())
	switch {
	case errors.Is(err, screen.ErrMountInProgress):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		return
	case errors.Is(err, screen.ErrTornDown):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	case err != nil:
		// The failure is already part of the screen status
		app.logger.Warn("retry did not load the forecast", "error", err)
	}

	c.JSON(http.StatusOK, app.screen.View())
}

// handleToggle godoc
// @Summary Flip the UI toggle
// @Tags screen
// @Produce json
// @Success 200 {object} ToggleResponse
// @Router /screen/toggle [post]
func (app *App) handleToggle(c *gin.Context) {
	c.JSON(http.StatusOK, ToggleResponse{Toggled: app.screen.Toggle()})
}
