package entity

// EmailNotification is a fully rendered transactional email, ready to hand
// to the mail gateway.
type EmailNotification struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}
