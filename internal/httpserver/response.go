package httpserver

import (
	"errors"
	"net/http"

	"zapstore/internal/domain"
	"zapstore/internal/messaging"
	"zapstore/internal/service/auth"
	"zapstore/internal/service/catalog"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// writeError maps domain errors to status codes; anything unknown is logged as a 500.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPaymentMethod),
		errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": auth.DeniedMessage})
	default:
		h.logger.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

// writeNotice reports a refused operation. State is unchanged.
func writeNotice(c *gin.Context, n *domain.Notice) {
	c.JSON(http.StatusConflict, n)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

type cartView struct {
	Items []domain.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
	Count int               `json:"count"`
}

func toCartView(items []domain.CartItem) cartView {
	return cartView{Items: items, Total: domain.CartTotal(items), Count: domain.CartCount(items)}
}

type productView struct {
	domain.Product
	LowStock         bool            `json:"lowStock"`
	Installments     int             `json:"installments"`
	InstallmentValue decimal.Decimal `json:"installmentValue"`
	InterestLink     string          `json:"interestLink"`
	NegotiationLink  string          `json:"negotiationLink,omitempty"`
}

func toProductView(p domain.Product, s domain.Settings, installments int) productView {
	v := productView{
		Product:          p,
		LowStock:         p.LowStock(),
		Installments:     installments,
		InstallmentValue: catalog.Installment(p.Price, installments),
		InterestLink:     messaging.Link(s.WhatsappNumber, messaging.InterestMessage(p)),
	}
	if s.EnableNegotiation {
		v.NegotiationLink = messaging.Link(s.WhatsappNumber, messaging.NegotiationMessage(s, p))
	}
	return v
}

type settingsView struct {
	domain.Settings
	FeedbackLink string `json:"feedbackLink"`
}

type checkoutView struct {
	Order           domain.Order `json:"order"`
	PixKey          string       `json:"pixKey,omitempty"`
	PixInstructions string       `json:"pixInstructions,omitempty"`
	VoucherLink     string       `json:"voucherLink"`
}
