package request

import "encoding/json"

// AddParticipantRequest accepts the identifier under its current or legacy
// field name. The value may be a JSON string or a number; Numero wins when
// both fields are set.
type AddParticipantRequest struct {
	Numero      json.RawMessage `json:"numero"`
	Participant json.RawMessage `json:"participant"`
}

// AddParticipantsBulkRequest documents the JSON mode of the bulk endpoint.
// The handler probes the raw body for the legacy aliases of Numeros too, so
// this struct is the canonical shape, not the only accepted one.
type AddParticipantsBulkRequest struct {
	Numeros []string `json:"numeros"`
}

type AddGiftRequest struct {
	Gift json.RawMessage `json:"gift"`
}

type AddGiftsBulkRequest struct {
	Gifts json.RawMessage `json:"gifts"`
}

// DrawRequest documents the stateless draw body. The handler works from the
// raw fields instead of binding this struct so it can report shape problems
// field by field.
type DrawRequest struct {
	Hommes []int64 `json:"hommes"`
	Femmes []int64 `json:"femmes"`
}
