package utils

import "github.com/gin-gonic/gin"

// CurrentSubject returns the authenticated identity (phone or staff username)
// set by the auth middleware, or "" when unauthenticated.
func CurrentSubject(c *gin.Context) string {
	if v, ok := c.Get("subject"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
