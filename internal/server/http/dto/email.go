package dto

// SendEmailRequest describes outbound email payload.
type SendEmailRequest struct {
	To        string            `json:"to"`
	Subject   string            `json:"subject"`
	HTML      string            `json:"html"`
	Template  string            `json:"template,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
}

// MailConfigStatus reports which mail credentials are configured.
type MailConfigStatus struct {
	UserConfigured     bool `json:"smtp_user_configured"`
	PasswordConfigured bool `json:"smtp_password_configured"`
}

// SendEmailResponse is returned by the send-email endpoint.
type SendEmailResponse struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message,omitempty"`
	Error        string            `json:"error,omitempty"`
	Details      string            `json:"details,omitempty"`
	ConfigStatus *MailConfigStatus `json:"config_status,omitempty"`
}
