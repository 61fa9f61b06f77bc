package dto

// CategoryRequest representa a requisição de inclusão ou remoção de
// uma categoria em um dos três registros (PRODUCT, EMPLOYEE, ADMIN)
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryListResponse representa a resposta com os nomes de um registro
type CategoryListResponse struct {
	Kind  string   `json:"kind"`
	Names []string `json:"names"`
}
