package whatsapp

type Config struct {
	AccessToken   string
	APIURL        string
	PhoneNumberID string
}

type TextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             Text   `json:"text"`
}

type Text struct {
	Body string `json:"body"`
}

type MessageResponse struct {
	MessagingProduct string          `json:"messaging_product"`
	Contacts         []ContactResult `json:"contacts"`
	Messages         []MessageResult `json:"messages"`
}

type ContactResult struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

type MessageResult struct {
	ID string `json:"id"`
}
