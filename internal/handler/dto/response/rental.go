package response

import (
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type RentalResponse struct {
	RentalUID  uuid.UUID `json:"rental_uid"`
	Username   string    `json:"username"`
	PaymentUID uuid.UUID `json:"payment_uid"`
	CarUID     uuid.UUID `json:"car_uid"`
	DateFrom   string    `json:"date_from"`
	DateTo     string    `json:"date_to"`
	Status     string    `json:"status"`
}

func FromRentalView(v *queries.RentalView) *RentalResponse {
	return &RentalResponse{
		RentalUID:  v.RentalUID,
		Username:   v.Username,
		PaymentUID: v.PaymentUID,
		CarUID:     v.CarUID,
		DateFrom:   v.DateFrom.Format(dateLayout),
		DateTo:     v.DateTo.Format(dateLayout),
		Status:     v.Status,
	}
}

func FromRentalViews(views []*queries.RentalView) []*RentalResponse {
	res := make([]*RentalResponse, len(views))
	for i, v := range views {
		res[i] = FromRentalView(v)
	}
	return res
}
