package model

// EmailRequest is an outbound email, optionally rendered from a stored template.
type EmailRequest struct {
	To        string
	Subject   string
	HTML      string
	Template  string
	Variables map[string]string
}

// EmailMessage is a fully rendered message ready for the transport.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// EmailTemplate is a named subject/body pair stored in the database.
type EmailTemplate struct {
	Name    string
	Subject string
	HTML    string
}

// MailConfigStatus reports which transport credentials are present.
type MailConfigStatus struct {
	UserConfigured     bool
	PasswordConfigured bool
}

// Ready reports whether the transport may be used.
func (s MailConfigStatus) Ready() bool {
	return s.UserConfigured && s.PasswordConfigured
}
