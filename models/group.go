package models

import "time"

type GroupTeam struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	IsHost  bool   `json:"is_host"`
	IsDebut bool   `json:"is_debut"`
}

// Group представляет группу турнира. Note опциональна, список команд может быть пустым.
type Group struct {
	Name           string      `json:"name"`
	Note           *string     `json:"note,omitempty"`
	Teams          []GroupTeam `json:"teams"`
	FirstMatchDate time.Time   `json:"first_match_date"`
}

func (g Group) HasNote() bool {
	return g.Note != nil && *g.Note != ""
}

func (g Group) NoteText() string {
	if g.Note == nil {
		return ""
	}
	return *g.Note
}

// SampleGroups returns groups A through D in draw order.
func SampleGroups() []Group {
	return []Group{
		{
			Name: "A",
			Note: note("Mexico opens tournament at Estadio Azteca"),
			Teams: []GroupTeam{
				{Name: "Mexico", Code: "MEX", IsHost: true},
				{Name: "South Africa", Code: "RSA"},
				{Name: "Poland", Code: "POL"},
				{Name: "Saudi Arabia", Code: "KSA"},
			},
			FirstMatchDate: date(2026, time.June, 11),
		},
		{
			Name: "B",
			Note: note("Canada opens in Toronto"),
			Teams: []GroupTeam{
				{Name: "Canada", Code: "CAN", IsHost: true},
				{Name: "Argentina", Code: "ARG"},
				{Name: "Morocco", Code: "MAR"},
				{Name: "Peru", Code: "PER"},
			},
			FirstMatchDate: date(2026, time.June, 12),
		},
		{
			Name: "C",
			Teams: []GroupTeam{
				{Name: "England", Code: "ENG"},
				{Name: "Denmark", Code: "DEN"},
				{Name: "Slovenia", Code: "SVN"},
				{Name: "Serbia", Code: "SRB"},
			},
			FirstMatchDate: date(2026, time.June, 13),
		},
		{
			Name: "D",
			Note: note("United States opens in Inglewood"),
			Teams: []GroupTeam{
				{Name: "United States", Code: "USA", IsHost: true},
				{Name: "Wales", Code: "WAL"},
				{Name: "Panama", Code: "PAN"},
				{Name: "Uzbekistan", Code: "UZB", IsDebut: true},
			},
			FirstMatchDate: date(2026, time.June, 14),
		},
	}
}

func note(s string) *string {
	return &s
}
