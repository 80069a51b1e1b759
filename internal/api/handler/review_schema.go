package handler

import "time"

type createReviewRequest struct {
	SpaceID string `json:"space_id" validate:"required"`
	Rating  int    `json:"rating"   validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type reviewResponse struct {
	ID        string    `json:"id"`
	SpaceID   string    `json:"space_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type listReviewsResponse struct {
	Data       []reviewResponse   `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
