package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/kanso-steps/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrFutureDate):
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "future date detected",
			Message: "you cannot log steps for future dates",
		})

	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrUnknownTimeWindow):
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "invalid input",
			Message: err.Error(),
		})

	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})

	default:
		logrus.WithError(err).Errorf("[HTTP] request %s %s failed", c.Request.Method, c.Request.URL.Path)

		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
