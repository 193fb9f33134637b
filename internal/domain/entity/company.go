package entity

// Company representa un local (lanchonete). Un solo catálogo/pedidos/usuarios se comparte entre empresas.
type Company struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Logo     string `json:"logo"` // glifo corto
	Color    string `json:"color"`
	CNPJ     string `json:"cnpj,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// DefaultCompanyKey empresa activa cuando el snapshot no indica otra.
const DefaultCompanyKey = "lanchonete-a"

// DefaultCompanies devuelve las empresas de demostración.
func DefaultCompanies() map[string]Company {
	return map[string]Company{
		"lanchonete-a": {Key: "lanchonete-a", Name: "Lanchonete A+Burgers", Location: "Rua das Flores, 123 - Centro", Logo: "AB", Color: "#FF6B35"},
		"burger-king":  {Key: "burger-king", Name: "Burger King", Location: "Av. Paulista, 1000 - Bela Vista", Logo: "BK", Color: "#FDB827"},
		"mcdonalds":    {Key: "mcdonalds", Name: "McDonald's", Location: "Rua Augusta, 1500 - Consolação", Logo: "M", Color: "#FFCC00"},
		"subway":       {Key: "subway", Name: "Subway", Location: "Av. Brigadeiro Faria Lima, 3400 - Itaim", Logo: "S", Color: "#00A651"},
	}
}
