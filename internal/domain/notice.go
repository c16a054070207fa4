package domain

import "fmt"

// NoticeCode identifies why an operation was refused.
type NoticeCode string

const (
	NoticeOutOfStock    NoticeCode = "out_of_stock"
	NoticeStockLimit    NoticeCode = "stock_limit"
	NoticeCategoryInUse NoticeCode = "category_in_use"
)

// Notice is a policy rejection shown to the shopper or merchant. Operations
// that return a nil *Notice were applied; a non-nil one means state is unchanged.
type Notice struct {
	Code    NoticeCode `json:"code"`
	Message string     `json:"message"`
}

func (n *Notice) String() string {
	if n == nil {
		return ""
	}
	return string(n.Code) + ": " + n.Message
}

func OutOfStockNotice() *Notice {
	return &Notice{Code: NoticeOutOfStock, Message: "Desculpe, este produto está temporariamente esgotado."}
}

// StockLimitNotice is raised both when adding and when changing quantities.
func StockLimitNotice() *Notice {
	return &Notice{Code: NoticeStockLimit, Message: "Limite de estoque atingido para este item."}
}

func CategoryInUseNotice(linked int) *Notice {
	return &Notice{
		Code:    NoticeCategoryInUse,
		Message: fmt.Sprintf("Não é possível excluir esta categoria pois existem %d produtos vinculados a ela.", linked),
	}
}
