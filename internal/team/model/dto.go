package model

// RegisterTeamRequest represents the request to register a team into a
// tournament. Fields are validated by the service, not by binding tags, so
// that missing fields surface as the registration error taxonomy instead of
// a generic binding error.
type RegisterTeamRequest struct {
	TournamentID string   `json:"tournamentId"`
	TeamName     string   `json:"teamName"`
	Players      []Player `json:"players"`
}

// HasRequiredFields returns true if tournamentId, teamName and players are
// all present. A present-but-empty players array is not "missing"; it fails
// the team-size check instead.
func (r *RegisterTeamRequest) HasRequiredFields() bool {
	return r.TournamentID != "" && r.TeamName != "" && r.Players != nil
}

// UpdateStatusRequest represents the administrative request to transition a
// team's status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
