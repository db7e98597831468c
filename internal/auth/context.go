package auth

import "github.com/gin-gonic/gin"

const principalKey = "auth_principal"

// SetPrincipal stores the authenticated principal on the request context.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the authenticated principal, or nil on routes that
// never passed the gate.
func PrincipalFrom(c *gin.Context) *Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*Principal)
	return p
}
