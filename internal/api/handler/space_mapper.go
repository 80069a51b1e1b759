package handler

import "github.com/spaceshare/rental-api/internal/core/ports"

func toSpaceInput(req spaceRequest) ports.SpaceInput {
	return ports.SpaceInput{
		Title:        req.Title,
		Description:  req.Description,
		NightlyPrice: req.NightlyPrice,
		Location:     req.Location,
		Capacity:     req.Capacity,
		Amenities:    req.Amenities,
	}
}

func toSpaceResponse(r *ports.SpaceResult) spaceResponse {
	return spaceResponse{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		NightlyPrice: r.NightlyPrice,
		Location:     r.Location,
		Capacity:     r.Capacity,
		Amenities:    r.Amenities,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}

func toListSpacesResponse(r *ports.ListSpacesResult) listSpacesResponse {
	items := make([]spaceResponse, len(r.Items))
	for i := range r.Items {
		items[i] = toSpaceResponse(&r.Items[i])
	}
	return listSpacesResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
