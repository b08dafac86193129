package models

// RoundSchedule is a stage of the tournament with its match-day window.
// DateRange is a display string and is never parsed.
type RoundSchedule struct {
	RoundName string `json:"round_name"`
	DateRange string `json:"date_range"`
}

// SampleRounds returns the stages in tournament order, group stage first.
func SampleRounds() []RoundSchedule {
	return []RoundSchedule{
		{RoundName: "Group stage – Matchday 1", DateRange: "June 11–17, 2026"},
		{RoundName: "Group stage – Matchday 2", DateRange: "June 18–24, 2026"},
		{RoundName: "Group stage – Matchday 3", DateRange: "June 25–27, 2026"},
		{RoundName: "Round of 32", DateRange: "June 29–July 2, 2026"},
		{RoundName: "Round of 16", DateRange: "July 4–7, 2026"},
		{RoundName: "Quarter-finals", DateRange: "July 9–11, 2026"},
		{RoundName: "Semi-finals", DateRange: "July 14–15, 2026"},
		{RoundName: "Third-place match", DateRange: "July 18, 2026"},
		{RoundName: "Final", DateRange: "July 19, 2026"},
	}
}
