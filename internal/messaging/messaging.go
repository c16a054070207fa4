// Package messaging builds the WhatsApp click-to-chat links the storefront
// hands to shoppers. Nothing is delivered from here.
package messaging

import (
	"fmt"
	"net/url"
	"strings"

	"zapstore/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	PlaceholderProduct = "{produto}"
	PlaceholderPrice   = "{preco}"
	PlaceholderStore   = "{loja}"
)

const (
	fallbackNegotiation = "Olá! Gostaria de negociar o produto {produto}."
	fallbackFeedback    = "Olá! Gostaria de enviar um feedback."
)

// Render replaces every occurrence of each placeholder present in vars.
// Unknown placeholders are left untouched.
func Render(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, k, v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Price formats an amount with two decimals, e.g. 189.90.
func Price(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func NegotiationMessage(s domain.Settings, p domain.Product) string {
	tmpl := s.MsgNegotiation
	if tmpl == "" {
		tmpl = fallbackNegotiation
	}
	return Render(tmpl, map[string]string{
		PlaceholderProduct: p.Name,
		PlaceholderPrice:   Price(p.Price),
	})
}

func FeedbackMessage(s domain.Settings) string {
	tmpl := s.MsgFeedback
	if tmpl == "" {
		tmpl = fallbackFeedback
	}
	return Render(tmpl, map[string]string{PlaceholderStore: s.StoreName})
}

func InterestMessage(p domain.Product) string {
	return fmt.Sprintf("Olá! Tenho interesse no produto: %s (R$ %s)", p.Name, Price(p.Price))
}

// VoucherMessage asks the merchant to confirm a payment receipt.
func VoucherMessage(orderID string, total decimal.Decimal) string {
	return fmt.Sprintf("Olá! Realizei o pagamento do pedido #%s no valor de R$ %s. Segue o comprovante.", orderID, Price(total))
}

// Link returns https://wa.me/<number>?text=<text>, percent-encoding spaces as %20.
func Link(number, text string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://wa.me/" + url.PathEscape(number) + "?text=" + escaped
}
