package api

import (
	"net/http"

	reqdto "little-lemon/internal/handler/dto/request"
	resdto "little-lemon/internal/handler/dto/response"
	"little-lemon/internal/handler/httperr"
	"little-lemon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.BookingQueries
}

func NewAvailabilityHandler(q queries.BookingQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Available times
// @Description Bookable times for a date. Does not touch the visitor's booking form.
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date query parameter is required", nil)
		return
	}

	view, err := h.q.Availability(c.Request.Context(), query.Date)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
