package model

// Solution is the single attempt record a user holds per problem. LastAttempt
// carries the most recent submitted content; Solved flips once the external
// judging service reports a pass.
type Solution struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	ProblemID   int64  `json:"problem_id"`
	LastAttempt string `json:"last_attempt"`
	Solved      bool   `json:"solved"`
}
