package get_slot_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-PhotographerService/internal/api/handlers"
	"github.com/m04kA/SMC-PhotographerService/internal/domain"
)

type Handler struct {
	catalog domain.Catalog
	logger  Logger
}

func NewHandler(catalog domain.Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Каталог слотов фиксирован на время работы сервиса, поэтому отдается как есть.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := FromDomainCatalog(h.catalog)

	h.logger.Info("GET /slots - Slot catalog retrieved: slots_count=%d", len(h.catalog))
	handlers.RespondJSON(w, http.StatusOK, response)
}
