package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/worldcup-hub/services"
	"github.com/Dosada05/worldcup-hub/views"
)

type HomeHandler struct {
	pageService services.PageService
	renderer    PageRenderer
	logger      *slog.Logger
}

func NewHomeHandler(ps services.PageService, renderer PageRenderer, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		pageService: ps,
		renderer:    renderer,
		logger:      logger,
	}
}

// Index обрабатывает GET /
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, h.logger, h.renderer, views.PageHome, h.pageService.Home())
}

// APIIndex godoc
// @Summary      API descriptor
// @Description  Lists the API version and the available endpoints.
// @Tags         api
// @Produce      json
// @Success      200  {object}  models.APIDescriptor
// @Router       /api/home [get]
func (h *HomeHandler) APIIndex(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, h.pageService.APIDescriptor(), nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
