package response

import (
	"tirage/internal/domain/models"
	"tirage/internal/domain/pairing"
)

// AssociationEntry is one row of the public association listing.
type AssociationEntry struct {
	Participant string `json:"participant"`
	Gift        int64  `json:"gift"`
}

// AssociationList renders the same data twice, as a name-to-gift map and as
// a list, the shape the listing endpoint has always had.
type AssociationList struct {
	Success          bool               `json:"success"`
	Total            int                `json:"total"`
	Associations     map[string]int64   `json:"associations"`
	AssociationsList []AssociationEntry `json:"associations_list"`
}

// AssociateResult reports a persisted draw over the stored pools.
type AssociateResult struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message"`
	Timestamp    string                `json:"timestamp"`
	Associations []pairing.Assignment  `json:"associations"`
	Stats        models.AssociateStats `json:"statistiques"`
}

// DrawResult reports a stateless draw over the pools sent in the request.
type DrawResult struct {
	Success   bool             `json:"success"`
	Timestamp string           `json:"timestamp"`
	Couples   []pairing.Couple `json:"couples"`
	Stats     DrawStats        `json:"statistiques"`
}

type DrawStats struct {
	TotalPersonnes int `json:"total_personnes"`
	TotalCouples   int `json:"total_couples"`
	CouplesHF      int `json:"couples_H-F"`
	CouplesFF      int `json:"couples_F-F"`
	CouplesHH      int `json:"couples_H-H"`
	NonAssociees   int `json:"personnes_non_associees"`
}
