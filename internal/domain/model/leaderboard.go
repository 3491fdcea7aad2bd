package model

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	Points         int    `json:"points"`
	ProblemsSolved int    `json:"problems_solved"`
}
