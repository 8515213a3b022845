package request_models

import "globetrotter/pkg/utils"

type CreateActivityRequest struct {
	StopID       string     `json:"stopId"`
	ActivityName string     `json:"activityName"`
	Cost         utils.Cost `json:"cost"`
	Day          string     `json:"day"`
}
