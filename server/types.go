package server

// WebhookPayload is the Cloud API delivery envelope:
// object > entry > changes > value > messages.
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

type ChangeValue struct {
	MessagingProduct string    `json:"messaging_product"`
	Metadata         Metadata  `json:"metadata"`
	Contacts         []Contact `json:"contacts,omitempty"`
	Messages         []Message `json:"messages,omitempty"`
	Statuses         []Status  `json:"statuses,omitempty"`
}

type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type Contact struct {
	Profile ContactProfile `json:"profile"`
	WaID    string         `json:"wa_id"`
}

type ContactProfile struct {
	Name string `json:"name"`
}

type Message struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *TextContent `json:"text,omitempty"`
}

type TextContent struct {
	Body string `json:"body"`
}

// Status is a delivery receipt; carried in the same envelope but never
// processed as a message.
type Status struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// firstTextMessage defensively unwraps the single text message of a delivery.
// Receipts, media messages and structurally incomplete payloads yield ok=false.
func (p *WebhookPayload) firstTextMessage() (Message, bool) {
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, message := range change.Value.Messages {
				if message.From == "" || message.Text == nil {
					continue
				}
				return message, true
			}
		}
	}
	return Message{}, false
}

// ConversationSummary is one row of the dashboard conversation listing.
type ConversationSummary struct {
	SenderID   string `json:"sender_id"`
	Step       string `json:"step"`
	Name       string `json:"name,omitempty"`
	TopSize    string `json:"top_size,omitempty"`
	BottomSize string `json:"bottom_size,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
