package controllers_test

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var errNotStubbed = errors.New("not stubbed")

type stubAccountService struct {
	signup          func(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error)
	login           func(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	googleAuthURL   func(state string) string
	loginWithGoogle func(ctx context.Context, code string) (*response_models.AuthResponse, error)
	profile         func(ctx context.Context, userID string) (*response_models.UserResponse, error)
	updateProfile   func(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
	updateAvatar    func(ctx context.Context, userID string, avatar db_models.Image) (*response_models.UserResponse, error)
	changePassword  func(ctx context.Context, userID string, req request_models.ChangePasswordRequest) error
}

var _ services.AccountServiceInterface = (*stubAccountService)(nil)

func (s *stubAccountService) Signup(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	if s.signup == nil {
		return nil, errNotStubbed
	}
	return s.signup(ctx, req)
}

func (s *stubAccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	if s.login == nil {
		return nil, errNotStubbed
	}
	return s.login(ctx, req)
}

func (s *stubAccountService) GoogleAuthURL(state string) string {
	if s.googleAuthURL == nil {
		return "https://accounts.example/auth"
	}
	return s.googleAuthURL(state)
}

func (s *stubAccountService) LoginWithGoogle(ctx context.Context, code string) (*response_models.AuthResponse, error) {
	if s.loginWithGoogle == nil {
		return nil, errNotStubbed
	}
	return s.loginWithGoogle(ctx, code)
}

func (s *stubAccountService) Profile(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	if s.profile == nil {
		return nil, errNotStubbed
	}
	return s.profile(ctx, userID)
}

func (s *stubAccountService) UpdateProfile(ctx context.Context, userID string, req request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	if s.updateProfile == nil {
		return nil, errNotStubbed
	}
	return s.updateProfile(ctx, userID, req)
}

func (s *stubAccountService) UpdateAvatar(ctx context.Context, userID string, avatar db_models.Image) (*response_models.UserResponse, error) {
	if s.updateAvatar == nil {
		return nil, errNotStubbed
	}
	return s.updateAvatar(ctx, userID, avatar)
}

func (s *stubAccountService) ChangePassword(ctx context.Context, userID string, req request_models.ChangePasswordRequest) error {
	if s.changePassword == nil {
		return errNotStubbed
	}
	return s.changePassword(ctx, userID, req)
}

type stubTripService struct {
	createTrip      func(ctx context.Context, input services.CreateTripInput) (*response_models.TripResponse, error)
	listTripsByUser func(ctx context.Context, userID string) ([]response_models.TripResponse, error)
	updateTrip      func(ctx context.Context, tripID string, input services.UpdateTripInput) (*response_models.TripResponse, error)
	deleteTrip      func(ctx context.Context, tripID string) error
}

var _ services.TripServiceInterface = (*stubTripService)(nil)

func (s *stubTripService) CreateTrip(ctx context.Context, input services.CreateTripInput) (*response_models.TripResponse, error) {
	if s.createTrip == nil {
		return nil, errNotStubbed
	}
	return s.createTrip(ctx, input)
}

func (s *stubTripService) ListTripsByUser(ctx context.Context, userID string) ([]response_models.TripResponse, error) {
	if s.listTripsByUser == nil {
		return nil, errNotStubbed
	}
	return s.listTripsByUser(ctx, userID)
}

func (s *stubTripService) UpdateTrip(ctx context.Context, tripID string, input services.UpdateTripInput) (*response_models.TripResponse, error) {
	if s.updateTrip == nil {
		return nil, errNotStubbed
	}
	return s.updateTrip(ctx, tripID, input)
}

func (s *stubTripService) DeleteTrip(ctx context.Context, tripID string) error {
	if s.deleteTrip == nil {
		return errNotStubbed
	}
	return s.deleteTrip(ctx, tripID)
}

type stubBudgetService struct {
	tripBudget func(ctx context.Context, tripID string) (float64, error)
}

var _ services.BudgetServiceInterface = (*stubBudgetService)(nil)

func (s *stubBudgetService) TripBudget(ctx context.Context, tripID string) (float64, error) {
	if s.tripBudget == nil {
		return 0, errNotStubbed
	}
	return s.tripBudget(ctx, tripID)
}
