package httpserver

import (
	"net/http"
	"strings"

	"zapstore/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *handler) dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.cat.Dashboard())
}

func (h *handler) adminListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Products())
}

// bindProduct decodes a product and applies the form rules of the admin
// console: a name is required, price and stock may not be negative.
func bindProduct(c *gin.Context) (domain.Product, bool) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid product")
		return p, false
	}
	p.Name = strings.TrimSpace(p.Name)
	switch {
	case p.Name == "":
		badRequest(c, "name required")
		return p, false
	case p.Price.IsNegative():
		badRequest(c, "price must not be negative")
		return p, false
	case p.Stock < 0:
		badRequest(c, "stock must not be negative")
		return p, false
	}
	return p, true
}

func (h *handler) adminCreateProduct(c *gin.Context) {
	p, ok := bindProduct(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, h.store.SaveProduct(c.Request.Context(), p))
}

func (h *handler) adminUpdateProduct(c *gin.Context) {
	p, ok := bindProduct(c)
	if !ok {
		return
	}
	p.ID = c.Param("id")
	c.JSON(http.StatusOK, h.store.SaveProduct(c.Request.Context(), p))
}

func (h *handler) adminDeleteProduct(c *gin.Context) {
	h.store.DeleteProduct(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *handler) adminListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.cat.CategoryUsage())
}

func bindCategory(c *gin.Context) (domain.Category, bool) {
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		badRequest(c, "invalid category")
		return cat, false
	}
	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Name == "" {
		badRequest(c, "name required")
		return cat, false
	}
	return cat, true
}

func (h *handler) adminCreateCategory(c *gin.Context) {
	cat, ok := bindCategory(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, h.store.SaveCategory(c.Request.Context(), cat))
}

func (h *handler) adminUpdateCategory(c *gin.Context) {
	cat, ok := bindCategory(c)
	if !ok {
		return
	}
	cat.ID = c.Param("id")
	c.JSON(http.StatusOK, h.store.SaveCategory(c.Request.Context(), cat))
}

func (h *handler) adminDeleteCategory(c *gin.Context) {
	if notice := h.store.DeleteCategory(c.Request.Context(), c.Param("id")); notice != nil {
		writeNotice(c, notice)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) adminSaveSettings(c *gin.Context) {
	var s domain.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		badRequest(c, "invalid settings")
		return
	}
	h.store.SaveSettings(c.Request.Context(), s)
	c.JSON(http.StatusOK, s)
}

// The password is never echoed back.
func (h *handler) adminGetCredentials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": h.store.AdminCredentials().Email})
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handler) adminUpdateCredentials(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email and password required")
		return
	}
	h.store.UpdateAdminCredentials(c.Request.Context(), domain.AdminCredentials{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	c.JSON(http.StatusOK, gin.H{"email": h.store.AdminCredentials().Email})
}

func (h *handler) adminListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Orders())
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handler) adminUpdateOrderStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status required")
		return
	}
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	id := c.Param("id")
	found, err := h.store.UpdateOrderStatus(c.Request.Context(), id, status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !found {
		h.writeError(c, domain.ErrNotFound)
		return
	}
	for _, o := range h.store.Orders() {
		if o.ID == id {
			c.JSON(http.StatusOK, o)
			return
		}
	}
	c.Status(http.StatusNoContent)
}
