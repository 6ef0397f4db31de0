package handlers

import (
	"MediRecords/middlewares"
	"MediRecords/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// writeError maps service errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case services.IsEntityNotFound(err):
		middlewares.HttpError(c, err.Error(), http.StatusNotFound, err)
	case errors.As(err, &validationErrs):
		middlewares.HttpError(c, validationErrs.Error(), http.StatusBadRequest, err)
	default:
		middlewares.HttpError(c, err.Error(), http.StatusInternalServerError, err)
	}
}

func badRequest(c *gin.Context, message string, err error) {
	middlewares.HttpError(c, message, http.StatusBadRequest, err)
}
