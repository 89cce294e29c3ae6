package request

import "tsmit_os/internal/domain/entities"

type ClientRequest struct {
	Name                 string   `json:"name" binding:"required"`
	Email                string   `json:"email"`
	CNPJ                 string   `json:"cnpj"`
	Address              string   `json:"address"`
	ContractedServiceIDs []string `json:"contracted_service_ids"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:                 r.Name,
		Email:                r.Email,
		CNPJ:                 r.CNPJ,
		Address:              r.Address,
		ContractedServiceIDs: r.ContractedServiceIDs,
	}
}
