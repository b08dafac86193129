package services

import (
	"fmt"

	"github.com/Dosada05/worldcup-hub/models"
)

const (
	APIMessage = "World Cup 2026 Hub API"
	APIVersion = "1.0.0"

	homeTitle       = "World Cup 2026 Hub | News, Teams, Stats, History & More"
	homeDescription = "Your ultimate destination for FIFA World Cup 2026 - News, Teams, Players, Match Schedules, Venues, History Wiki and more."

	infoTitle       = "2026 World Cup – Format, Venues & More"
	infoDescription = "A deeper look at how the expanded 48-team World Cup works, where matches will be played, and the branding, mascots, tickets and controversies around the tournament."
)

// APIEndpoints lists the routes advertised by the /api/home descriptor.
var APIEndpoints = []string{"/api/home"}

// PageService собирает данные для каждой страницы сайта.
// Все значения строятся заново при каждом вызове.
type PageService interface {
	Home() models.HomePage
	TournamentOverview() models.TournamentPage
	WorldCupInfo() models.InfoPage
	APIDescriptor() models.APIDescriptor
}

type pageService struct{}

func NewPageService() PageService {
	return &pageService{}
}

func (s *pageService) Home() models.HomePage {
	return models.HomePage{
		Title:       homeTitle,
		Description: homeDescription,
	}
}

func (s *pageService) TournamentOverview() models.TournamentPage {
	tournament := models.SampleTournament()

	return models.TournamentPage{
		Title:       TournamentTitle(tournament),
		Description: TournamentDescription(tournament),
		Tournament:  tournament,
		Groups:      models.SampleGroups(),
		Rounds:      models.SampleRounds(),
	}
}

func (s *pageService) WorldCupInfo() models.InfoPage {
	return models.InfoPage{
		Title:       infoTitle,
		Description: infoDescription,
	}
}

func (s *pageService) APIDescriptor() models.APIDescriptor {
	endpoints := make([]string, len(APIEndpoints))
	copy(endpoints, APIEndpoints)

	return models.APIDescriptor{
		Message:   APIMessage,
		Version:   APIVersion,
		Endpoints: endpoints,
	}
}

// TournamentTitle returns "<name> – Tournament Overview".
func TournamentTitle(t models.Tournament) string {
	return fmt.Sprintf("%s – Tournament Overview", t.Name)
}

// TournamentDescription summarises hosts and dates in one sentence.
func TournamentDescription(t models.Tournament) string {
	return fmt.Sprintf("%s – hosted by %s from %s to %s.",
		t.Name,
		t.HostList(),
		models.FormatLongDate(t.StartDate),
		models.FormatLongDate(t.EndDate),
	)
}
