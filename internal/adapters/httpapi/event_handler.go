package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"volleyhub/internal/domain"
	"volleyhub/internal/ports/input"
)

func CreateEvent(events input.EventUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cmd input.CreateEventCommand
		if err := c.ShouldBindJSON(&cmd); err != nil {
			fail(c, domain.ErrInvalidEvent)
			return
		}
		cmd.OrganizerID = currentUser(c)

		event, err := events.CreateEvent(c.Request.Context(), cmd)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusCreated, event, "Event created successfully")
	}
}

func ListUpcoming(events input.EventUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := events.ListUpcoming(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, list, "")
	}
}

func GetEvent(events input.EventUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := events.GetEvent(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, event, "")
	}
}

// ListOwnedClosed lists the caller's own events that have ended.
func ListOwnedClosed(events input.EventUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := events.ListOwnedClosed(c.Request.Context(), currentUser(c))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, list, "")
	}
}

func ApplyToEvent(events input.EventUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := events.ApplyToEvent(c.Request.Context(), c.Param("id"), currentUser(c))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusCreated, event, "Application sent")
	}
}

type approveRequest struct {
	// FindNum is the open slot count the organizer saw when deciding.
	FindNum *int `json:"find_num" binding:"required"`
}

func Approve(events input.EventUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req approveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, domain.ErrInvalidRequest)
			return
		}
		event, err := events.Approve(c.Request.Context(), currentUser(c), c.Param("id"), c.Param("userId"), *req.FindNum)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, event, "Application accepted")
	}
}

func Decline(events input.EventUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := events.Decline(c.Request.Context(), currentUser(c), c.Param("id"), c.Param("userId"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, event, "Application declined")
	}
}
