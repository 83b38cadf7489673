package middleware

import (
	"net/http"
	"strings"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	actorKey = "actor"
)

var errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "X-User-ID and X-User-Role headers are required", http.StatusUnauthorized)

// Identity reads the caller identity forwarded by the gateway. Requests without it are
// rejected before reaching a handler.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderUserID))
		role := entities.ParseRole(c.GetHeader(HeaderUserRole))
		if id == "" || role == "" {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}
		c.Set(actorKey, entities.Actor{ID: id, Role: role})
		c.Next()
	}
}

// ActorFrom returns the actor stored by Identity.
func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}
