package api

import (
	"net/http"

	"github.com/phrazzld/polyglot-api/internal/api/shared"
	"github.com/phrazzld/polyglot-api/internal/catalog"
)

// Languages handles GET /languages requests.
//
//	@Summary		Supported languages
//	@Tags			languages
//	@Produce		json
//	@Success		200	{object}	LanguagesResponse
//	@Router			/languages [get]
func Languages(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, LanguagesResponse{
		Languages: catalog.Languages(),
		Default:   catalog.DefaultLanguage,
	})
}

// Health handles GET /health requests.
//
//	@Summary	Liveness probe
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
