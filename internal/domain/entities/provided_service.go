package entities

// ProvidedService is a catalog entry for a service the shop offers
// (backup, EDR, web protection, ...). Clients contract a subset of these;
// service orders snapshot that subset at creation.
type ProvidedService struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
