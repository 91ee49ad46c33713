package response

import (
	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AvailabilityResponse struct {
	Date  string   `json:"date" example:"2026-10-15"`
	Times []string `json:"times" example:"17:00,17:30,20:30,22:30"`
}

type BookingFieldsResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Guests   int    `json:"guests"`
	Occasion string `json:"occasion"`
}

type ReservationResponse struct {
	Date     string `json:"date" example:"2026-10-15"`
	Time     string `json:"time" example:"20:30"`
	Guests   int    `json:"guests" example:"2"`
	Occasion string `json:"occasion" example:"Anniversary"`
}

type BookingStateResponse struct {
	Route        string                `json:"route"`
	State        string                `json:"state" enums:"editing,submitting,confirmed"`
	Fields       BookingFieldsResponse `json:"fields"`
	Times        AvailabilityResponse  `json:"times"`
	CanSubmit    bool                  `json:"canSubmit"`
	Errors       map[string]string     `json:"errors,omitempty"`
	Message      string                `json:"message,omitempty"`
	Confirmation *ReservationResponse  `json:"confirmation,omitempty"`
}

type SubmitResponse struct {
	Route       string              `json:"route" example:"/confirmed"`
	Reservation ReservationResponse `json:"reservation"`
}

func FromAvailabilityView(v *queries.AvailabilityView) AvailabilityResponse {
	var res AvailabilityResponse
	_ = copier.Copy(&res, v)
	if res.Times == nil {
		res.Times = []string{}
	}
	return res
}

func FromBookingView(v *queries.BookingView) *BookingStateResponse {
	res := &BookingStateResponse{
		Route:     v.Route,
		State:     v.State,
		Times:     FromAvailabilityView(&v.Times),
		CanSubmit: v.CanSubmit,
		Message:   v.Message,
	}
	_ = copier.Copy(&res.Fields, &v.Fields)
	if len(v.Errors) > 0 {
		res.Errors = make(map[string]string, len(v.Errors))
		for k, msg := range v.Errors {
			res.Errors[k] = msg
		}
	}
	if v.Confirmation != nil {
		res.Confirmation = &ReservationResponse{}
		_ = copier.Copy(res.Confirmation, v.Confirmation)
	}
	return res
}

func FromSubmitResult(r *commands.SubmitResult) *SubmitResponse {
	fields := r.Draft.Fields()
	res := &SubmitResponse{Route: r.Route}
	_ = copier.Copy(&res.Reservation, &fields)
	return res
}
