package models

import (
	"strings"
	"time"
)

// LongDateLayout соответствует формату "June 11, 2026" (день дополняется пробелом).
const LongDateLayout = "January _2, 2006"

// Tournament описывает турнир целиком: хозяев, даты и общие цифры.
// Счетчики носят справочный характер и не выводятся из других полей.
type Tournament struct {
	Name            string    `json:"name"`
	Slogan          string    `json:"slogan"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Hosts           []string  `json:"hosts"`
	TeamsCount      int       `json:"teams_count"`
	ConfedCount     int       `json:"confed_count"`
	VenuesCount     int       `json:"venues_count"`
	HostCitiesCount int       `json:"host_cities_count"`
}

// SampleTournament returns the fixed 2026 World Cup record.
func SampleTournament() Tournament {
	return Tournament{
		Name:            "2026 FIFA World Cup",
		Slogan:          "We Are 26",
		StartDate:       date(2026, time.June, 11),
		EndDate:         date(2026, time.July, 19),
		Hosts:           []string{"Canada", "Mexico", "United States"},
		TeamsCount:      48,
		ConfedCount:     6,
		VenuesCount:     16,
		HostCitiesCount: 16,
	}
}

// HostList joins the host countries for display.
func (t Tournament) HostList() string {
	return strings.Join(t.Hosts, ", ")
}

// FormatLongDate renders a calendar date as "June 11, 2026".
func FormatLongDate(d time.Time) string {
	return d.Format(LongDateLayout)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
