package dto

// SeedDemoResponse reports the outcome of seeding a demo ledger
type SeedDemoResponse struct {
	Message      string `json:"message"`
	Submissions  int    `json:"submissions"`
	Count        int    `json:"count"`
	HistoryDepth int    `json:"historyDepth"`
}
