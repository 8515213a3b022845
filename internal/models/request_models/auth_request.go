package request_models

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name              *string `json:"name"`
	Location          *string `json:"location"`
	Bio               *string `json:"bio"`
	ProfileVisibility *string `json:"profileVisibility"`
	ShowEmail         *bool   `json:"showEmail"`
	ShowLocation      *bool   `json:"showLocation"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
