package api

import (
	"net/http"

	"tripdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List offers
// @Description Incremental card list; pages=N returns pages 1..N merged
// @Tags catalog
// @Produce json
// @Param pages query int false "Number of pages to merge (default 1)"
// @Success 200 {object} queries.OfferList
// @Failure 502 {object} httperr.Response
// @Router /offer [get]
func (h *CatalogHandler) ListOffers(c *gin.Context) {
	result, err := h.catalogQueries.ListOffers(c.Request.Context(), pagesParam(c))
	if err != nil {
		abortGatewayError(c, err, "Failed to load offers")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List bookings
// @Tags catalog
// @Produce json
// @Param pages query int false "Number of pages to merge (default 1)"
// @Success 200 {object} queries.BookingList
// @Failure 502 {object} httperr.Response
// @Router /booking [get]
func (h *CatalogHandler) ListBookings(c *gin.Context) {
	result, err := h.catalogQueries.ListBookings(c.Request.Context(), pagesParam(c))
	if err != nil {
		abortGatewayError(c, err, "Failed to load bookings")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List agencies
// @Tags catalog
// @Produce json
// @Param pages query int false "Number of pages to merge (default 1)"
// @Success 200 {object} queries.AgencyList
// @Failure 502 {object} httperr.Response
// @Router /agency [get]
func (h *CatalogHandler) ListAgencies(c *gin.Context) {
	result, err := h.catalogQueries.ListAgencies(c.Request.Context(), pagesParam(c))
	if err != nil {
		abortGatewayError(c, err, "Failed to load agencies")
		return
	}
	c.JSON(http.StatusOK, result)
}
