package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

const maxAvatarBytes = 5 << 20 // 5MB

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{accountService: accountService}
}

// Signup creates a user and, like login, returns {user, token}.
func (a *AccountController) Signup(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	auth, err := a.accountService.Signup(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, auth)
}

func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	auth, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, auth)
}

func (a *AccountController) Profile(c *gin.Context) {
	user, err := a.accountService.Profile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (a *AccountController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.accountService.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}

// UpdateAvatar accepts a multipart upload in the `avatar` field. Non-image
// MIME types are rejected.
func (a *AccountController) UpdateAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if fileHeader.Size > maxAvatarBytes {
		utils.RespondError(c, http.StatusBadRequest, "File too large (5MB limit)")
		return
	}

	avatar, err := readUpload(fileHeader)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	user, err := a.accountService.UpdateAvatar(c.Request.Context(), c.GetString("user_id"), avatar)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Avatar updated successfully", "user": user})
}

func (a *AccountController) ChangePassword(c *gin.Context) {
	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Current password and new password are required")
		return
	}

	if err := a.accountService.ChangePassword(c.Request.Context(), c.GetString("user_id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// GoogleAuth redirects the browser to the provider's consent screen.
func (a *AccountController) GoogleAuth(c *gin.Context) {
	state := uuid.New().String()
	c.Redirect(http.StatusTemporaryRedirect, a.accountService.GoogleAuthURL(state))
}

// GoogleCallback finishes the OAuth flow and hands token + user data back to
// the frontend via redirect query parameters.
func (a *AccountController) GoogleCallback(c *gin.Context) {
	redirectBase := os.Getenv("GOOGLE_REDIRECT_URI")

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, redirectBase+"?error=auth_failed")
		return
	}

	auth, err := a.accountService.LoginWithGoogle(c.Request.Context(), code)
	if err != nil {
		c.Redirect(http.StatusTemporaryRedirect, redirectBase+"?error=auth_failed")
		return
	}

	userData, err := json.Marshal(auth.User)
	if err != nil {
		c.Redirect(http.StatusTemporaryRedirect, redirectBase+"?error=auth_failed")
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, fmt.Sprintf(
		"%s?token=%s&userData=%s",
		redirectBase, url.QueryEscape(auth.Token), url.QueryEscape(string(userData)),
	))
}

// readUpload copies a multipart file into an Image value, keeping the
// declared MIME type and original filename verbatim.
func readUpload(fileHeader *multipart.FileHeader) (db_models.Image, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return db_models.Image{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return db_models.Image{}, err
	}

	return db_models.Image{
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Filename:    fileHeader.Filename,
	}, nil
}
