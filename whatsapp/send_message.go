package whatsapp

import "fmt"

func (c *Client) SendTextMessage(toNumber, body string) (*MessageResponse, error) {
	message := c.createTextMessage(toNumber, body)
	url := fmt.Sprintf("%s/%s/messages", c.config.APIURL, c.config.PhoneNumberID)
	return c.sendMessageRequest("POST", url, message)
}

func (c *Client) createTextMessage(toNumber, body string) TextMessage {
	return TextMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               toNumber,
		Type:             "text",
		Text:             Text{Body: body},
	}
}
