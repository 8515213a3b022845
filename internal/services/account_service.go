package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/oauth"
	"globetrotter/pkg/utils"
)

// GoogleExchanger is the slice of the OAuth provider the account service
// depends on, kept narrow so tests can stub it.
type GoogleExchanger interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth.Profile, error)
	FetchPicture(ctx context.Context, url string) ([]byte, string, error)
}

type AccountServiceInterface interface {
	Signup(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	GoogleAuthURL(state string) string
	LoginWithGoogle(ctx context.Context, code string) (*response_models.AuthResponse, error)
	Profile(ctx context.Context, userID string) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
	UpdateAvatar(ctx context.Context, userID string, avatar db_models.Image) (*response_models.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req request_models.ChangePasswordRequest) error
}

type AccountService struct {
	userRepo repositories.UserRepository
	google   GoogleExchanger
}

func NewAccountService(userRepo repositories.UserRepository, google GoogleExchanger) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		google:   google,
	}
}

func (a *AccountService) Signup(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &db_models.User{
		Name:              strings.TrimSpace(req.Name),
		Email:             req.Email,
		PasswordHash:      hashed,
		ProfileVisibility: "public",
		ShowLocation:      true,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return a.issueToken(user)
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	// Same error for unknown email and wrong password.
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issueToken(user)
}

func (a *AccountService) GoogleAuthURL(state string) string {
	return a.google.AuthURL(state)
}

// LoginWithGoogle exchanges the authorization code for provider profile data
// and creates-or-reuses a user by email match. The provider's profile picture
// becomes the avatar only when the user has none.
func (a *AccountService) LoginWithGoogle(ctx context.Context, code string) (*response_models.AuthResponse, error) {
	profile, err := a.google.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidCredentials, err)
	}

	user, err := a.userRepo.FindByEmail(ctx, profile.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if user == nil {
		user = &db_models.User{
			Name:              profile.Name,
			Email:             profile.Email,
			ProfileVisibility: "public",
			ShowLocation:      true,
		}
		a.populateAvatar(ctx, user, profile.Picture)
		if err := a.userRepo.Insert(ctx, user); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else if !user.Avatar.Present() {
		a.populateAvatar(ctx, user, profile.Picture)
		if err := a.userRepo.Update(ctx, user); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return a.issueToken(user)
}

// populateAvatar is best-effort: an unreachable picture URL must not block
// the login.
func (a *AccountService) populateAvatar(ctx context.Context, user *db_models.User, pictureURL string) {
	if pictureURL == "" {
		return
	}
	data, contentType, err := a.google.FetchPicture(ctx, pictureURL)
	if err != nil {
		log.Printf("Error fetching provider avatar: %v", err)
		return
	}
	user.Avatar = db_models.Image{
		Data:        data,
		ContentType: contentType,
		Filename:    "google-avatar.jpg",
	}
}

func (a *AccountService) Profile(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	resp := response_models.BuildUserResponse(user)
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	v := &utils.ValidationError{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		switch {
		case len(name) < 2:
			v.Add("Name must be at least 2 characters long")
		case len(name) > 50:
			v.Add("Name cannot exceed 50 characters")
		default:
			user.Name = name
		}
	}
	if req.Location != nil {
		if len(*req.Location) > 100 {
			v.Add("Location cannot exceed 100 characters")
		} else {
			user.Location = *req.Location
		}
	}
	if req.Bio != nil {
		if len(*req.Bio) > 500 {
			v.Add("Bio cannot exceed 500 characters")
		} else {
			user.Bio = *req.Bio
		}
	}
	if req.ProfileVisibility != nil {
		switch *req.ProfileVisibility {
		case "public", "friends", "private":
			user.ProfileVisibility = *req.ProfileVisibility
		default:
			v.Add("Profile visibility must be public, friends or private")
		}
	}
	if req.ShowEmail != nil {
		user.ShowEmail = *req.ShowEmail
	}
	if req.ShowLocation != nil {
		user.ShowLocation = *req.ShowLocation
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildUserResponse(user)
	return &resp, nil
}

func (a *AccountService) UpdateAvatar(ctx context.Context, userID string, avatar db_models.Image) (*response_models.UserResponse, error) {
	if !strings.HasPrefix(avatar.ContentType, "image/") {
		v := &utils.ValidationError{}
		v.Add("Only image files are allowed")
		return nil, v
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	user.Avatar = avatar
	if err := a.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := response_models.BuildUserResponse(user)
	return &resp, nil
}

func (a *AccountService) ChangePassword(ctx context.Context, userID string, req request_models.ChangePasswordRequest) error {
	if len(req.NewPassword) < 6 {
		v := &utils.ValidationError{}
		v.Add("New password must be at least 6 characters long")
		return v
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, req.CurrentPassword); err != nil {
		return utils.ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user.PasswordHash = hashed
	if err := a.userRepo.Update(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) issueToken(user *db_models.User) (*response_models.AuthResponse, error) {
	token, err := utils.CreateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &response_models.AuthResponse{
		User:  response_models.BuildUserResponse(user),
		Token: token,
	}, nil
}
