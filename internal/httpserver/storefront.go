package httpserver

import (
	"net/http"

	"zapstore/internal/domain"
	"zapstore/internal/messaging"
	"zapstore/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

func (h *handler) getSettings(c *gin.Context) {
	s := h.store.Settings()
	c.JSON(http.StatusOK, settingsView{
		Settings:     s,
		FeedbackLink: messaging.Link(s.WhatsappNumber, messaging.FeedbackMessage(s)),
	})
}

func (h *handler) browse(c *gin.Context) {
	products := h.cat.Browse(catalog.Filter{
		CategoryID: c.Query("category"),
		Search:     c.Query("q"),
	})
	c.JSON(http.StatusOK, gin.H{"results": products, "count": len(products)})
}

func (h *handler) getProduct(c *gin.Context) {
	p, err := h.store.Product(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductView(p, h.store.Settings(), h.cat.Installments()))
}

func (h *handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Categories())
}

type addToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

func (h *handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, toCartView(h.store.Cart()))
}

func (h *handler) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "productId required")
		return
	}
	notice, err := h.store.AddToCart(req.ProductID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if notice != nil {
		writeNotice(c, notice)
		return
	}
	c.JSON(http.StatusOK, toCartView(h.store.Cart()))
}

func (h *handler) updateCartQuantity(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return
	}
	notice, err := h.store.UpdateCartQuantity(c.Param("productId"), req.Delta)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if notice != nil {
		writeNotice(c, notice)
		return
	}
	c.JSON(http.StatusOK, toCartView(h.store.Cart()))
}

func (h *handler) removeFromCart(c *gin.Context) {
	h.store.RemoveFromCart(c.Param("productId"))
	c.JSON(http.StatusOK, toCartView(h.store.Cart()))
}

func (h *handler) clearCart(c *gin.Context) {
	h.store.ClearCart()
	c.Status(http.StatusNoContent)
}

type checkoutRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

func (h *handler) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "paymentMethod required")
		return
	}
	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		h.writeError(c, err)
		return
	}
	order, err := h.store.PlaceOrder(c.Request.Context(), method)
	if err != nil {
		h.writeError(c, err)
		return
	}

	s := h.store.Settings()
	view := checkoutView{
		Order:       order,
		VoucherLink: messaging.Link(s.WhatsappNumber, messaging.VoucherMessage(order.ID, order.Total)),
	}
	if method == domain.PaymentPIX {
		view.PixKey = s.PixKey
		view.PixInstructions = s.PixInstructions
	}
	c.JSON(http.StatusCreated, view)
}
