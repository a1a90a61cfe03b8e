package user

import "time"

type CreateUserRequest struct {
	EmployeeID            string  `json:"employee_id" binding:"required"`
	Name                  string  `json:"name" binding:"required"`
	Email                 string  `json:"email" binding:"omitempty,email"`
	Facility              string  `json:"facility" binding:"required"`
	Department            string  `json:"department" binding:"required"`
	Role                  string  `json:"role" binding:"omitempty,oneof=USER ADMIN DEVELOPER"`
	HiredAt               string  `json:"hired_at"`
	InitialAdjustmentDays float64 `json:"initial_adjustment_days"`
}

type UpdateUserRequest struct {
	Name                  string   `json:"name" binding:"required"`
	Email                 string   `json:"email" binding:"omitempty,email"`
	Facility              string   `json:"facility" binding:"required"`
	Department            string   `json:"department" binding:"required"`
	Role                  string   `json:"role" binding:"required,oneof=USER ADMIN DEVELOPER"`
	HiredAt               *string  `json:"hired_at"`
	InitialAdjustmentDays *float64 `json:"initial_adjustment_days"`
}

type UserResponse struct {
	ID                    string  `json:"id"`
	EmployeeID            string  `json:"employee_id"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email,omitempty"`
	Facility              string  `json:"facility"`
	Department            string  `json:"department"`
	Role                  string  `json:"role"`
	HiredAt               *string `json:"hired_at,omitempty"`
	InitialAdjustmentDays float64 `json:"initial_adjustment_days"`
	PaidLeaveDays         float64 `json:"paid_leave_days"`
	MustChangePassword    bool    `json:"must_change_password"`
	InvitationToken       *string `json:"invitation_token,omitempty"`
	CreatedAt             string  `json:"created_at"`
	DeletedAt             *string `json:"deleted_at,omitempty"`
}

func mapToResponse(u User, includeInvitation bool) UserResponse {
	adjustment, _ := u.InitialAdjustmentDays.Float64()
	balance, _ := u.PaidLeaveDays.Float64()

	resp := UserResponse{
		ID:                    u.ID.String(),
		EmployeeID:            u.EmployeeID,
		Name:                  u.Name,
		Email:                 u.Email,
		Facility:              u.Facility,
		Department:            u.Department,
		Role:                  u.Role,
		InitialAdjustmentDays: adjustment,
		PaidLeaveDays:         balance,
		MustChangePassword:    u.MustChangePassword,
		CreatedAt:             u.CreatedAt.Format(time.RFC3339),
	}
	if u.HiredAt != nil {
		d := u.HiredAt.Format("2006-01-02")
		resp.HiredAt = &d
	}
	if includeInvitation {
		resp.InvitationToken = u.InvitationToken
	}
	if u.DeletedAt.Valid {
		d := u.DeletedAt.Time.Format(time.RFC3339)
		resp.DeletedAt = &d
	}
	return resp
}

func mapToListResponse(users []User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u, false)
	}
	return resp
}
