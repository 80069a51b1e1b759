package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// paginationResponse is the shared pagination envelope for list endpoints.
type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// --- Request / Response types ---

type spaceRequest struct {
	Title        string  `json:"title"         validate:"required"`
	Description  string  `json:"description"`
	NightlyPrice float64 `json:"nightly_price" validate:"required,gt=0"`
	Location     string  `json:"location"      validate:"required"`
	Capacity     int     `json:"capacity"      validate:"required,gte=1"`
	Amenities    string  `json:"amenities"`
}

type spaceResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	NightlyPrice float64   `json:"nightly_price"`
	Location     string    `json:"location"`
	Capacity     int       `json:"capacity"`
	Amenities    string    `json:"amenities"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type listSpacesResponse struct {
	Data       []spaceResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
