package entities

// Client is the company whose equipment is under repair. The workflow core
// consumes it read-only: ContractedServiceIDs seeds the order snapshot at
// creation time and Email/Name resolve the notification recipient.
//
// Storage model (DynamoDB):
//   - PK: id

type Client struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Email                string   `json:"email,omitempty"`
	CNPJ                 string   `json:"cnpj,omitempty"`
	Address              string   `json:"address,omitempty"`
	ContractedServiceIDs []string `json:"contracted_service_ids,omitempty"`
}
