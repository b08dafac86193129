package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/worldcup-hub/services"
	"github.com/Dosada05/worldcup-hub/views"
)

type TournamentHandler struct {
	pageService services.PageService
	renderer    PageRenderer
	logger      *slog.Logger
}

func NewTournamentHandler(ps services.PageService, renderer PageRenderer, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{
		pageService: ps,
		renderer:    renderer,
		logger:      logger,
	}
}

// TournamentPage обрабатывает GET /tournament
func (h *TournamentHandler) TournamentPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, h.logger, h.renderer, views.PageTournament, h.pageService.TournamentOverview())
}

// WorldCupInfoPage обрабатывает GET /worldcup-2026-info
func (h *TournamentHandler) WorldCupInfoPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, h.logger, h.renderer, views.PageWorldCupInfo, h.pageService.WorldCupInfo())
}
