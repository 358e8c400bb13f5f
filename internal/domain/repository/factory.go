package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Rates() RateRepository
	Orders() OrderRepository
	Clients() ClientRepository
	Notifications() NotificationRepository
	Templates() TemplateRepository
}
