package venue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hemantgupta27/Court-booking-application/internal/api"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// @Summary      List venues
// @Description  Returns the static venue catalog.
// @Tags         venues
// @Produce      json
// @Success      200 {object} api.Response{data=[]venue.Venue}
// @Router       /api/venues [get]
func (h *Handler) ListVenues(c *gin.Context) {
	c.JSON(http.StatusOK, api.OK(h.catalog.All()))
}
