package models

// HomePage и InfoPage несут только заголовок и описание страницы.
type HomePage struct {
	Title       string
	Description string
}

type InfoPage struct {
	Title       string
	Description string
}

type TournamentPage struct {
	Title       string
	Description string
	Tournament  Tournament
	Groups      []Group
	Rounds      []RoundSchedule
}

// APIDescriptor is the capability stub served at /api/home.
type APIDescriptor struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}
