package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"volleyhub/internal/domain"
	"volleyhub/internal/ports/input"
)

// SubmitFeedback creates or overwrites the caller's rating of one player.
func SubmitFeedback(feedback input.FeedbackUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cmd input.SubmitFeedbackCommand
		if err := c.ShouldBindJSON(&cmd); err != nil {
			fail(c, feedbackBindError(err))
			return
		}
		cmd.RaterID = currentUser(c)
		cmd.EventID = c.Param("id")
		cmd.UserID = c.Param("userId")

		rec, err := feedback.Submit(c.Request.Context(), cmd)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, rec, "Feedback saved")
	}
}

func GetFeedback(feedback input.FeedbackUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := feedback.Get(c.Request.Context(), c.Param("id"), c.Param("userId"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, rec, "")
	}
}

func ListUserFeedback(feedback input.FeedbackUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := feedback.ListForUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, list, "")
	}
}

func Reputation(feedback input.FeedbackUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")
		avg, err := feedback.Reputation(c.Request.Context(), userID)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, http.StatusOK, gin.H{"user_id": userID, "average_grade": avg}, "")
	}
}

// feedbackBindError reports a grade that is not a whole number as a grade
// error rather than a generic form error.
func feedbackBindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "grade" {
		return domain.ErrInvalidGrade
	}
	return domain.ErrInvalidFeedback
}
