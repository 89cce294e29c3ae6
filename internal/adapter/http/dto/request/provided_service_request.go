package request

import "tsmit_os/internal/domain/entities"

type ProvidedServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r ProvidedServiceRequest) ToEntity() entities.ProvidedService {
	return entities.ProvidedService{
		Name:        r.Name,
		Description: r.Description,
	}
}

// AssignServiceRequest is the bulk-assignment payload: the clients that
// contract the service named in the path.
type AssignServiceRequest struct {
	ClientIDs []string `json:"client_ids" binding:"required"`
}
