package dto

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Logo     string `json:"logo"`
	Color    string `json:"color"`
	CNPJ     string `json:"cnpj,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Current  bool   `json:"current"`
}

// CompanyListResponse empresas disponibles (selector del login).
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
}

// SaveCompanySettingsRequest datos editables de la empresa activa.
type SaveCompanySettingsRequest struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// SwitchCompanyRequest cambio de empresa activa.
type SwitchCompanyRequest struct {
	Company string `json:"company"`
}
