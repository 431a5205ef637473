package response

import "tirage/internal/domain/models"

type Health struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type SystemStatus struct {
	Success   bool                `json:"success"`
	Timestamp string              `json:"timestamp"`
	Status    models.SystemStatus `json:"status"`
}

type ResetDone struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message"`
	PreviousData models.ResetReport `json:"previous_data"`
	Timestamp    string             `json:"timestamp"`
}

// Home is the endpoint catalogue served at the root.
type Home struct {
	Message   string                       `json:"message"`
	Version   string                       `json:"version"`
	Storage   string                       `json:"storage"`
	Endpoints map[string]map[string]string `json:"endpoints"`
}
