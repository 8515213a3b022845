package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// CreateTrip reads multipart form data because the request may carry a cover
// image alongside the text fields.
func (t *TripController) CreateTrip(c *gin.Context) {
	input := services.CreateTripInput{
		UserID:      c.PostForm("userId"),
		TripName:    c.PostForm("tripName"),
		StartDate:   c.PostForm("startDate"),
		EndDate:     c.PostForm("endDate"),
		Description: c.PostForm("description"),
	}

	if cover, ok := formImage(c, "coverImage"); ok {
		input.CoverImage = &cover
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, trip, "Trip created successfully")
}

// GetTripsByUser lists a user's trips. The route parameter is named :id for
// router consistency with the update/delete routes but carries the user id.
func (t *TripController) GetTripsByUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	trips, err := t.tripService.ListTripsByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, trips, "Trips fetched successfully")
}

func (t *TripController) UpdateTrip(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	input := services.UpdateTripInput{
		TripName:    formField(c, "tripName"),
		StartDate:   formField(c, "startDate"),
		EndDate:     formField(c, "endDate"),
		Description: formField(c, "description"),
	}
	if cover, ok := formImage(c, "coverImage"); ok {
		input.CoverImage = &cover
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), tripID, input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, trip, "Trip updated successfully")
}

func (t *TripController) DeleteTrip(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, nil, "Trip deleted successfully")
}

// formField distinguishes an absent form field from an empty one, so partial
// updates only touch what the client actually sent.
func formField(c *gin.Context, name string) *string {
	if value, ok := c.GetPostForm(name); ok {
		return &value
	}
	return nil
}

// formImage reads an optional uploaded file from the form.
func formImage(c *gin.Context, field string) (db_models.Image, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return db_models.Image{}, false
	}
	img, err := readUpload(fileHeader)
	if err != nil {
		return db_models.Image{}, false
	}
	return img, true
}
