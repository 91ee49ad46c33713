package web

import (
	"log/slog"
	"net/http"

	reqdto "little-lemon/internal/handler/dto/request"
	"little-lemon/internal/handler/httperr"
	"little-lemon/internal/handler/middleware"
	"little-lemon/internal/navigation"
	"little-lemon/internal/usecase"
	"little-lemon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ChangeDate handles the "Check available times" button. The other fields are
// kept so the visitor does not lose what they typed.
func (p *Pages) ChangeDate(c *gin.Context) {
	sess, req, ok := p.bindForm(c)
	if !ok {
		return
	}

	p.cmds.Edit(sess, req.ToFields())
	if _, err := p.cmds.ChangeDate(c.Request.Context(), sess, req.Date); err != nil {
		p.renderBookingError(c, sess, err)
		return
	}
	c.Redirect(http.StatusSeeOther, navigation.RouteBooking)
}

// Submit posts the reservation and follows the visitor to the confirmation page.
func (p *Pages) Submit(c *gin.Context) {
	sess, req, ok := p.bindForm(c)
	if !ok {
		return
	}

	result, err := p.cmds.Submit(c.Request.Context(), sess, req.ToFields())
	if err != nil {
		p.renderBookingError(c, sess, err)
		return
	}
	c.Redirect(http.StatusSeeOther, result.Route)
}

// NewBooking clears a confirmed form.
func (p *Pages) NewBooking(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.String(http.StatusServiceUnavailable, "Session unavailable")
		return
	}
	p.cmds.Reset(sess)
	c.Redirect(http.StatusSeeOther, navigation.RouteBooking)
}

func (p *Pages) bindForm(c *gin.Context) (*usecase.Session, reqdto.BookingRequest, bool) {
	var req reqdto.BookingRequest

	sess, ok := middleware.GetSession(c)
	if !ok {
		c.String(http.StatusServiceUnavailable, "Session unavailable")
		return nil, req, false
	}
	if err := c.ShouldBind(&req); err != nil {
		p.logger.Debug("booking form rejected", slog.String("error", err.Error()))
		data := p.bookingData(sess)
		data.Message = "Please check the form and try again."
		p.render(c, http.StatusBadRequest, "booking.html", data)
		return nil, req, false
	}
	return sess, req, true
}

// renderBookingError shows the form again with the visitor's input intact.
func (p *Pages) renderBookingError(c *gin.Context, sess *usecase.Session, err error) {
	status, _ := httperr.StatusFor(err)
	if status >= http.StatusInternalServerError {
		p.logger.Error("booking request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()),
		)
	}
	data := p.bookingData(sess)
	data.Message = queries.UserMessage(err)
	p.render(c, status, "booking.html", data)
}

func (p *Pages) bookingData(sess *usecase.Session) viewData {
	page, _ := p.registry.Resolve(navigation.RouteBooking)
	return p.viewData(sess, page, navigation.RouteBooking)
}
