package handlers

import (
	"errors"
	"net/http"
	"strings"

	"fleet_maintenance/internal/adapter/http/middleware"
	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase"
	"fleet_maintenance/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errMissingIdentity  = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Caller identity is missing", http.StatusUnauthorized)
	errInvalidPathParam = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapUseCaseError maps a use case error by class. code overrides the generic code for the
// class when the caller knows a more specific one.
func mapUseCaseError(err error, code string) *pkg.AppError {
	var class error
	var status int
	switch {
	case errors.Is(err, usecase.ErrValidation):
		class, status = usecase.ErrValidation, http.StatusBadRequest
		if code == "" {
			code = "INVALID_REQUEST"
		}
	case errors.Is(err, usecase.ErrNotFound):
		class, status = usecase.ErrNotFound, http.StatusNotFound
		if code == "" {
			code = "NOT_FOUND"
		}
	case errors.Is(err, usecase.ErrForbidden):
		class, status = usecase.ErrForbidden, http.StatusForbidden
		if code == "" {
			code = "FORBIDDEN"
		}
	case errors.Is(err, usecase.ErrConflict):
		class, status = usecase.ErrConflict, http.StatusConflict
		if code == "" {
			code = "CONFLICT"
		}
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	msg := strings.TrimPrefix(err.Error(), class.Error()+": ")
	return pkg.NewDomainError(code, msg, err, status)
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// requireActor returns the caller set by middleware.Identity, writing 401 when absent.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		writeError(c, errMissingIdentity)
	}
	return actor, ok
}

func pathID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		writeError(c, errInvalidPathParam)
	}
	return id, id != ""
}

// bindOptionalJSON binds the body when there is one; lifecycle endpoints accept an empty body.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, errInvalidPayload)
		return false
	}
	return true
}
