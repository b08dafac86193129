package services

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/worldcup-hub/models"
)

func TestPageService_Home(t *testing.T) {
	t.Parallel()

	page := NewPageService().Home()
	if !strings.Contains(page.Title, "World Cup 2026 Hub") {
		t.Fatalf("unexpected title %q", page.Title)
	}
	if page.Description == "" {
		t.Fatal("expected description")
	}
}

func TestPageService_TournamentOverview(t *testing.T) {
	t.Parallel()

	page := NewPageService().TournamentOverview()

	if page.Title != "2026 FIFA World Cup – Tournament Overview" {
		t.Fatalf("unexpected title %q", page.Title)
	}
	want := "2026 FIFA World Cup – hosted by Canada, Mexico, United States from June 11, 2026 to July 19, 2026."
	if page.Description != want {
		t.Fatalf("expected description %q, got %q", want, page.Description)
	}
	if len(page.Groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(page.Groups))
	}
	if len(page.Rounds) != 9 {
		t.Fatalf("expected 9 rounds, got %d", len(page.Rounds))
	}
}

func TestPageService_TournamentOverviewIsStable(t *testing.T) {
	t.Parallel()

	svc := NewPageService()
	first := svc.TournamentOverview()
	first.Groups[0].Teams[0].Name = "changed"
	first.Tournament.Hosts[0] = "changed"

	second := svc.TournamentOverview()
	if second.Groups[0].Teams[0].Name != "Mexico" || second.Tournament.Hosts[0] != "Canada" {
		t.Fatal("expected mutations of one page not to leak into the next")
	}
	if !reflect.DeepEqual(second, svc.TournamentOverview()) {
		t.Fatal("expected identical overview values across calls")
	}
}

func TestPageService_WorldCupInfo(t *testing.T) {
	t.Parallel()

	page := NewPageService().WorldCupInfo()
	if page.Title != "2026 World Cup – Format, Venues & More" {
		t.Fatalf("unexpected title %q", page.Title)
	}
	if !strings.Contains(page.Description, "48-team") {
		t.Fatalf("unexpected description %q", page.Description)
	}
}

func TestPageService_APIDescriptor(t *testing.T) {
	t.Parallel()

	svc := NewPageService()
	got := svc.APIDescriptor()
	want := models.APIDescriptor{
		Message:   "World Cup 2026 Hub API",
		Version:   "1.0.0",
		Endpoints: []string{"/api/home"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	got.Endpoints[0] = "/changed"
	if svc.APIDescriptor().Endpoints[0] != "/api/home" {
		t.Fatal("expected descriptor endpoints to be copied")
	}
}

func TestTournamentDescription_CustomTournament(t *testing.T) {
	t.Parallel()

	tr := models.Tournament{
		Name:      "Test Cup",
		Hosts:     []string{"Nowhere"},
		StartDate: time.Date(2030, time.July, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2030, time.July, 30, 0, 0, 0, 0, time.UTC),
	}

	want := "Test Cup – hosted by Nowhere from July  1, 2030 to July 30, 2030."
	if got := TournamentDescription(tr); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := TournamentTitle(tr); got != "Test Cup – Tournament Overview" {
		t.Fatalf("unexpected title %q", got)
	}
}
