package simulator

import "github.com/lox/pokerhand/poker"

// Report is the JSON form of a Result written by `simulate --output`.
type Report struct {
	Seed           int64          `json:"seed"`
	Rounds         int            `json:"rounds"`
	Players        int            `json:"players"`
	Hands          int            `json:"hands"`
	Categories     map[string]int `json:"categories"`
	Wins           []int          `json:"wins"`
	Ties           []int          `json:"ties"`
	Equity         []EquityReport `json:"equity"`
	Samples        []SampleReport `json:"samples,omitempty"`
	ElapsedMillis  int64          `json:"elapsed_ms"`
	HandsPerSecond float64        `json:"hands_per_second"`
}

// EquityReport is a seat's mean share of the pot with its 95% confidence
// interval.
type EquityReport struct {
	Mean float64 `json:"mean"`
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// SampleReport describes one sampled hand.
type SampleReport struct {
	Round    int      `json:"round"`
	Seat     int      `json:"seat"`
	Category string   `json:"category"`
	Cards    []string `json:"cards"`
}

// NewReport flattens r. Categories that never occurred are reported as zero
// so every report carries all ten keys.
func NewReport(seed int64, r *Result) Report {
	report := Report{
		Seed:           seed,
		Rounds:         r.Rounds,
		Players:        len(r.Wins),
		Hands:          r.Hands,
		Categories:     make(map[string]int, len(poker.Categories)),
		Wins:           r.Wins,
		Ties:           r.Ties,
		ElapsedMillis:  r.Elapsed.Milliseconds(),
		HandsPerSecond: r.HandsPerSecond(),
	}
	for _, c := range poker.Categories {
		report.Categories[c.String()] = r.Categories[c]
	}
	for _, e := range r.Equity {
		low, high := e.ConfidenceInterval95()
		report.Equity = append(report.Equity, EquityReport{Mean: e.Mean(), Low: low, High: high})
	}
	for _, s := range r.Samples {
		cards := s.Hand.Cards()
		text := make([]string, len(cards))
		for i, c := range cards {
			text[i] = c.String()
		}
		report.Samples = append(report.Samples, SampleReport{
			Round:    s.Round,
			Seat:     s.Seat,
			Category: s.Hand.Category().String(),
			Cards:    text,
		})
	}
	return report
}
