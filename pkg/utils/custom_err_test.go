package utils_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/pkg/utils"
)

func TestValidationError_CollectsAllFields(t *testing.T) {
	v := &utils.ValidationError{}
	assert.NoError(t, v.Err())

	v.Add("Trip name must be at least 3 characters long")
	v.Add("Start date is required")
	v.Add("End date must be after start date")

	err := v.Err()
	require.Error(t, err)
	assert.Len(t, v.Fields, 3)
	assert.Equal(t,
		"Trip name must be at least 3 characters long. Start date is required. End date must be after start date",
		err.Error())
}

func TestAsValidationError_UnwrapsWrapped(t *testing.T) {
	v := &utils.ValidationError{}
	v.Add("Start date is required")
	wrapped := fmt.Errorf("creating trip: %w", v)

	got, ok := utils.AsValidationError(wrapped)

	require.True(t, ok)
	assert.Equal(t, v.Fields, got.Fields)
}

func TestAsValidationError_SentinelIsNot(t *testing.T) {
	_, ok := utils.AsValidationError(utils.ErrTripNotFound)
	assert.False(t, ok)
}

func TestPartialCascade_WrappedIsDetectable(t *testing.T) {
	err := fmt.Errorf("%w: deleting activities for stop x: boom", utils.ErrPartialCascade)
	assert.ErrorIs(t, err, utils.ErrPartialCascade)
}
