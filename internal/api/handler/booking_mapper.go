package handler

import "github.com/spaceshare/rental-api/internal/core/ports"

func toBookingResponse(r *ports.BookingResult) bookingResponse {
	return bookingResponse{
		ID:          r.ID,
		SpaceID:     r.SpaceID,
		UserID:      r.UserID,
		StartDate:   r.StartDate.UTC(),
		EndDate:     r.EndDate.UTC(),
		Guests:      r.Guests,
		TotalPrice:  r.TotalPrice,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt.UTC(),
		ConfirmedAt: r.ConfirmedAt,
		CancelledAt: r.CancelledAt,
	}
}

func toInvoiceResponse(r *ports.InvoiceResult) invoiceResponse {
	return invoiceResponse{
		InvoiceID: r.InvoiceID,
		BookingID: r.BookingID,
		Amount:    r.Amount,
		Status:    r.Status,
		IssuedAt:  r.IssuedAt.UTC(),
	}
}

func toListBookingsResponse(r *ports.ListBookingsResult) listBookingsResponse {
	items := make([]bookingResponse, len(r.Items))
	for i := range r.Items {
		items[i] = toBookingResponse(&r.Items[i])
	}
	return listBookingsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
