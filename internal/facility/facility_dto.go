package facility

import "time"

type CreateFacilityRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type UpdateFacilityRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type UpdateMappingsRequest struct {
	Facilities []string `json:"facilities" binding:"required"`
}

type FacilityResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at"`
}

type MappingsResponse struct {
	UserID     string   `json:"user_id"`
	Facilities []string `json:"facilities"`
}

func mapToResponse(f Facility) FacilityResponse {
	return FacilityResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		Address:   f.Address,
		Phone:     f.Phone,
		CreatedAt: f.CreatedAt.Format(time.RFC3339),
	}
}
