package response

import "tirage/internal/domain/models"

type ParticipantAdded struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Numero  string `json:"numero"`
}

type GiftAdded struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Gift    int64  `json:"gift"`
}

// ParticipantBulk reports a bulk insert. TotalProcessed counts the usable
// input values, including the ignored ones.
type ParticipantBulk struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	Added          []string `json:"added"`
	Ignored        []string `json:"ignored"`
	TotalProcessed int      `json:"total_processed"`
}

type GiftBulk struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Added   []int64 `json:"added"`
	Ignored []int64 `json:"ignored"`
}

type ParticipantList struct {
	Success      bool     `json:"success"`
	Total        int      `json:"total"`
	Participants []string `json:"participants"`
}

type GiftList struct {
	Success bool              `json:"success"`
	Total   int               `json:"total"`
	Gifts   []models.GiftView `json:"gifts"`
}
