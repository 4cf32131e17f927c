package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/specialistvlad/tdeecalc/internal/activity"
	"github.com/specialistvlad/tdeecalc/internal/report"
	"github.com/specialistvlad/tdeecalc/internal/tdee"
)

// calculateRequest uses pointers so that a zero value is accepted while a
// missing field is not.
type calculateRequest struct {
	WeightKg   *float64 `json:"weight_kg" binding:"required"`
	BodyFatPct *float64 `json:"body_fat_pct" binding:"required"`
	Activity   *int     `json:"activity" binding:"required"`
}

type calculateResponse struct {
	Input    tdee.Input     `json:"input"`
	Activity activity.Level `json:"activity"`
	tdee.Result
	Report string `json:"report"`
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func (s *Server) health(c *gin.Context) {
	c.String(http.StatusOK, "OK\n")
}

func (s *Server) listActivities(c *gin.Context) {
	c.JSON(http.StatusOK, activity.All())
}

// calculate handles POST /tdee.
func (s *Server) calculate(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	input := tdee.Input{WeightKg: *req.WeightKg, BodyFatPct: *req.BodyFatPct}
	if err := input.Validate(); err != nil {
		s.logger.Debug("Rejected calculation request.", "reason", err)
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	level, ok := activity.Lookup(*req.Activity)
	if !ok {
		s.logger.Debug("Rejected calculation request.", "activity", *req.Activity)
		apiError(c, http.StatusBadRequest, "activity: "+activity.ErrUnknownKey.Error())
		return
	}

	result := tdee.Compute(input, level.Multiplier)
	if err := result.Validate(); err != nil {
		s.logger.Debug("Rejected calculation request.", "weight_kg", input.WeightKg, "reason", err)
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, calculateResponse{
		Input:    input,
		Activity: level,
		Result:   result,
		Report:   report.Render(input, level, result),
	})
}
