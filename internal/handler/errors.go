package handler

import (
	"errors"
	"net/http"

	"salesledger/internal/apperr"
	"salesledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// writeError maps the error taxonomy onto HTTP statuses. Store failures log
// their cause and go out with the generic message only; no partial data
// accompanies any failure.
func writeError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	var nferr *apperr.NotFoundError
	var serr *apperr.StoreError

	switch {
	case errors.Is(err, apperr.ErrMissingDateRange):
		c.JSON(http.StatusBadRequest, response.Error(apperr.ErrMissingDateRange.Error()))
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.Error(verr.Message))
	case errors.As(err, &nferr):
		c.JSON(http.StatusNotFound, response.Error(nferr.Message))
	case errors.As(err, &serr):
		logrus.WithError(serr.Err).Error(serr.Message)
		c.JSON(http.StatusInternalServerError, response.Error(serr.Message))
	default:
		logrus.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, response.Error("internal server error"))
	}
}
