package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type ActivityLogServiceInterface interface {
	// Record appends an audit entry. It is best-effort: a failed write is
	// logged and swallowed so it can never fail the operation being audited.
	Record(ctx context.Context, userID uuid.UUID, action string, details map[string]interface{})
	RecentByUser(ctx context.Context, userID string, limit int) ([]response_models.ActivityLogResponse, error)
}

type ActivityLogService struct {
	logRepo repositories.ActivityLogRepository
}

func NewActivityLogService(logRepo repositories.ActivityLogRepository) ActivityLogServiceInterface {
	return &ActivityLogService{logRepo: logRepo}
}

func (s *ActivityLogService) Record(ctx context.Context, userID uuid.UUID, action string, details map[string]interface{}) {
	payload, err := json.Marshal(details)
	if err != nil {
		log.Printf("Error encoding activity log details for %s: %v", action, err)
		return
	}

	entry := &db_models.ActivityLog{
		UserID:  userID,
		Action:  action,
		Details: datatypes.JSON(payload),
	}
	if err := s.logRepo.Insert(ctx, entry); err != nil {
		log.Printf("Error writing activity log entry %s: %v", action, err)
	}
}

func (s *ActivityLogService) RecentByUser(ctx context.Context, userID string, limit int) ([]response_models.ActivityLogResponse, error) {
	if limit <= 0 {
		limit = 10
	}

	logs, err := s.logRepo.FindRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return response_models.BuildActivityLogResponses(logs), nil
}
