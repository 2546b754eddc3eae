package entity

// ScoreReport is the outcome of a bowling run handed to the report store.
type ScoreReport struct {
	ID       string `json:"id"`
	Rolls    []int  `json:"rolls"`
	Score    int    `json:"score"`
	Finished bool   `json:"finished"`
}

func NewScoreReport(id string, rolls []int, score int, finished bool) *ScoreReport {
	return &ScoreReport{
		ID:       id,
		Rolls:    rolls,
		Score:    score,
		Finished: finished,
	}
}
