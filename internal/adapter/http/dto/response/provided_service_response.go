package response

import "tsmit_os/internal/domain/entities"

type ProvidedServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func FromProvidedService(s entities.ProvidedService) ProvidedServiceResponse {
	return ProvidedServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
	}
}

func FromProvidedServices(services []entities.ProvidedService) []ProvidedServiceResponse {
	out := make([]ProvidedServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromProvidedService(s))
	}
	return out
}
