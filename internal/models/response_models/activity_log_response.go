package response_models

import (
	"encoding/json"
	"time"

	"globetrotter/internal/models/db_models"
)

type ActivityLogResponse struct {
	ID        string          `json:"_id"`
	UserID    string          `json:"userId"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details"`
	Timestamp time.Time       `json:"timestamp"`
}

func BuildActivityLogResponses(logs []db_models.ActivityLog) []ActivityLogResponse {
	out := make([]ActivityLogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, ActivityLogResponse{
			ID:        logs[i].ID.String(),
			UserID:    logs[i].UserID.String(),
			Action:    logs[i].Action,
			Details:   json.RawMessage(logs[i].Details),
			Timestamp: logs[i].Timestamp,
		})
	}
	return out
}
