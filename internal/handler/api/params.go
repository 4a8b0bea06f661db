package api

import (
	"net/http"

	"car-rental/internal/handler/httperr"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseUID(c *gin.Context, param string) (uuid.UUID, bool) {
	uid, err := uuid.Parse(c.Param(param))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrapf(err, "parse %s", param), "Invalid request", []httperr.FieldError{
			{Field: param, Error: "must be a valid UUID"},
		})
		return uuid.Nil, false
	}
	return uid, true
}

// requireUser backs up middleware.RequireUser for handlers mounted without it.
func requireUser(c *gin.Context) (string, bool) {
	name, ok := middleware.CurrentUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("caller identity missing"), "Invalid request", []httperr.FieldError{
			{Field: middleware.HeaderUserName, Error: "is required"},
		})
		return "", false
	}
	return name, true
}
