package domain

// Settings is the merchant's flat store configuration. Values are not validated.
type Settings struct {
	StoreName         string `json:"storeName"`
	Logo              string `json:"logo"`
	Banner            string `json:"banner"`
	PrimaryColor      string `json:"primaryColor"`
	BackgroundColor   string `json:"backgroundColor"`
	CardColor         string `json:"cardColor"`
	WhatsappNumber    string `json:"whatsappNumber"`
	PixKey            string `json:"pixKey"`
	PixInstructions   string `json:"pixInstructions"`
	EnableNegotiation bool   `json:"enableNegotiation"`
	MaxInstallments   int    `json:"maxInstallments"`
	EnableFloatingWA  bool   `json:"enableFloatingWA"`
	MsgNegotiation    string `json:"msgNegotiation"`
	MsgFeedback       string `json:"msgFeedback"`
}
