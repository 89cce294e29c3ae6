package response

import "tsmit_os/internal/domain/entities"

type ClientResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Email                string   `json:"email,omitempty"`
	CNPJ                 string   `json:"cnpj,omitempty"`
	Address              string   `json:"address,omitempty"`
	ContractedServiceIDs []string `json:"contracted_service_ids"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		Email:                c.Email,
		CNPJ:                 c.CNPJ,
		Address:              c.Address,
		ContractedServiceIDs: c.ContractedServiceIDs,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
