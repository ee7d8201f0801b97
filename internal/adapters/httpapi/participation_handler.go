package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volleyhub/internal/ports/input"
)

// ListParticipations lists the caller's ledger rows, optionally filtered by ?status=.
func ListParticipations(ledger input.ParticipationUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := ledger.ListForUser(c.Request.Context(), currentUser(c), c.Query("status"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, list, "")
	}
}
