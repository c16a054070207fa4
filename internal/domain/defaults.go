package domain

import "github.com/shopspring/decimal"

// DefaultSettings is used until the merchant saves their own configuration.
func DefaultSettings() Settings {
	return Settings{
		StoreName:         "Daily Lux",
		Logo:              "https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=200&h=200&fit=crop",
		Banner:            "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=1200&h=400&fit=crop",
		PrimaryColor:      "#0f172a",
		BackgroundColor:   "#f9fafb",
		CardColor:         "#ffffff",
		WhatsappNumber:    "5511999999999",
		PixKey:            "suachavepix@exemplo.com",
		PixInstructions:   "Após o pagamento, envie o comprovante para nosso WhatsApp para agilizar o envio do seu pedido.",
		EnableNegotiation: true,
		MaxInstallments:   12,
		EnableFloatingWA:  true,
		MsgNegotiation:    "Olá! Vi o produto {produto} por R$ {preco} na sua loja e gostaria de saber se conseguimos negociar o valor.",
		MsgFeedback:       "Olá! Gostaria de compartilhar minha experiência na {loja} com vocês.",
	}
}

func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Lançamentos", Order: 0},
		{ID: "2", Name: "Premium", Order: 1},
	}
}

func DefaultProducts() []Product {
	return []Product{
		{
			ID:          "101",
			Name:        "Óculos de Sol Aviador",
			Description: "Proteção UV400 e design clássico atemporal. Feito com materiais de alta durabilidade e lentes polarizadas para máximo conforto visual.",
			Price:       decimal.RequireFromString("189.90"),
			Image:       "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=600&h=600&fit=crop",
			CategoryID:  "1",
			Active:      true,
			Order:       0,
			Stock:       10,
		},
	}
}

// MockUsers are the accounts accepted by the mock login.
func MockUsers() []User {
	return []User{
		{ID: "admin1", Email: "admin@zap.com", Name: "Administrador", Role: RoleAdmin},
		{ID: "client1", Email: "cliente@exemplo.com", Name: "João Silva", Role: RoleClient},
	}
}

func DefaultAdminCredentials() AdminCredentials {
	return AdminCredentials{Email: "admin@zap.com", Password: "1234"}
}
