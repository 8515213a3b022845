package response_models

import "globetrotter/internal/models/db_models"

// UserResponse is the user record sans password hash.
type UserResponse struct {
	ID                string         `json:"_id"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Avatar            *ImageResponse `json:"avatar,omitempty"`
	Location          string         `json:"location"`
	Bio               string         `json:"bio"`
	Trips             int            `json:"trips"`
	Countries         int            `json:"countries"`
	Friends           int            `json:"friends"`
	ProfileVisibility string         `json:"profileVisibility"`
	ShowEmail         bool           `json:"showEmail"`
	ShowLocation      bool           `json:"showLocation"`
	CreatedAt         int64          `json:"createdAt"`
	UpdatedAt         int64          `json:"updatedAt"`
}

func BuildUserResponse(user *db_models.User) UserResponse {
	return UserResponse{
		ID:                user.ID.String(),
		Name:              user.Name,
		Email:             user.Email,
		Avatar:            BuildImageResponse(user.Avatar),
		Location:          user.Location,
		Bio:               user.Bio,
		Trips:             user.Trips,
		Countries:         user.Countries,
		Friends:           user.Friends,
		ProfileVisibility: user.ProfileVisibility,
		ShowEmail:         user.ShowEmail,
		ShowLocation:      user.ShowLocation,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

// AuthResponse is returned by both login and signup.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
