package dto

// CycleResponse describes the last completed bulk reset. Period is empty
// until the first reset has run.
type CycleResponse struct {
	Year   int    `json:"year,omitempty"`
	Month  int    `json:"month,omitempty"`
	Period string `json:"period"`
}

// CycleCheckResponse reports the outcome of an on-demand cycle check.
type CycleCheckResponse struct {
	Reset        bool   `json:"reset"`
	Previous     string `json:"previous"`
	Current      string `json:"current"`
	MembersReset int    `json:"members_reset"`
}
