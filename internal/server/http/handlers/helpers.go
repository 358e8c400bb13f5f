package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/clientportal/internal/server/http/middleware"
)

// CurrentClientID extracts authenticated client identifier from context.
func CurrentClientID(c *gin.Context) uuid.UUID {
	val, ok := c.Get(middleware.ClientIDContextKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := val.(uuid.UUID)
	return id
}
