package auth

type LoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type SetupAccountRequest struct {
	InvitationToken string `json:"invitation_token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
}

type ForgotPasswordRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
}

type ResetPasswordRequest struct {
	ResetToken string `json:"reset_token" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
}

type AuthResponse struct {
	ID                 string `json:"id"`
	EmployeeID         string `json:"employee_id"`
	Name               string `json:"name"`
	Facility           string `json:"facility"`
	Department         string `json:"department"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
}
