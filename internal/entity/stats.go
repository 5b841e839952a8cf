package entity

// Stats are the cumulative results of every finished game across all
// sessions, as opposed to Score which lives and dies with one session.
type Stats struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Ties  int `json:"ties"`
}
