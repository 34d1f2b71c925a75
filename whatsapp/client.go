// Package whatsapp wraps the WhatsApp Cloud API send endpoint.
package whatsapp

import (
	"net/http"
)

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(accessToken, apiURL, phoneNumberID string, httpClient http.Client) Client {
	client := Client{
		config: Config{
			AccessToken:   accessToken,
			APIURL:        apiURL,
			PhoneNumberID: phoneNumberID,
		},
		httpClient: &httpClient,
	}

	return client
}
