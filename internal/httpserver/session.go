package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email and password required")
		return
	}
	u, err := h.auth.LoginWait(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if c.Request.Context().Err() != nil {
			return
		}
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

func (h *handler) logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// resetCredentials backs the "forgot password" action on the login screen.
func (h *handler) resetCredentials(c *gin.Context) {
	h.auth.ResetCredentials(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *handler) session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": h.store.User()})
}

func (h *handler) myOrders(c *gin.Context) {
	u := sessionUser(c)
	c.JSON(http.StatusOK, h.cat.OrdersForClient(u.ID))
}
