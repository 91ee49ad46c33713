package api

import (
	"net/http"

	"little-lemon/internal/domain/booking"
	reqdto "little-lemon/internal/handler/dto/request"
	resdto "little-lemon/internal/handler/dto/response"
	"little-lemon/internal/handler/httperr"
	"little-lemon/internal/handler/middleware"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoSession = errs.Mark(errs.New("no session attached to request"), errs.ErrSessionUnavailable)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Booking form state
// @Description Snapshot of the visitor's booking form: fields, offered times and whether it can be submitted
// @Tags booking
// @Produce json
// @Success 200 {object} resdto.BookingStateResponse
// @Router /api/booking [get]
func (h *BookingHandler) Get(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errNoSession, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(h.q.Snapshot(sess)))
}

// @Summary Change booking date
// @Description Sets the form's date and replaces the offered times
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ChangeDateRequest true "New date"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/booking/date [put]
func (h *BookingHandler) ChangeDate(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errNoSession, nil)
		return
	}
	var req reqdto.ChangeDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	times, err := h.cmds.ChangeDate(c.Request.Context(), sess, req.Date)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Date:  booking.FormatDate(times.Date()),
		Times: times.Strings(),
	})
}

// @Summary Submit reservation
// @Description Validates and submits the reservation. On success the visitor is on /confirmed.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Reservation"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response "detail holds per-field messages"
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errNoSession, nil)
		return
	}
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), sess, req.ToFields())
	if err != nil {
		var detail any
		if fe, ok := errs.DetailOf[booking.FieldErrors](err); ok {
			detail = fe
		}
		httperr.Abort(c, err, detail)
		return
	}

	c.Header("Location", result.Route)
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}

// @Summary Start a new booking
// @Description Clears the form so another reservation can be made
// @Tags booking
// @Success 204 "No Content"
// @Router /api/booking [delete]
func (h *BookingHandler) Reset(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errNoSession, nil)
		return
	}
	h.cmds.Reset(sess)
	c.Status(http.StatusNoContent)
}
