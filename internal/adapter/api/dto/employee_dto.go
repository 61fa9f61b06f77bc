package dto

import (
	"github.com/quintadosovos/erp-avicola/internal/domain/employee"
)

// EmployeeRequest representa a requisição de funcionário. Os campos de
// documentos são blobs codificados opacos (data URLs enviadas pelo
// painel administrativo).
type EmployeeRequest struct {
	Name          string  `json:"name" binding:"required"`
	Role          string  `json:"role" binding:"required"`
	Category      string  `json:"category"`
	Salary        float64 `json:"salary" binding:"required,gt=0"`
	AdmissionDate string  `json:"admission_date" binding:"required"`
	Contact       string  `json:"contact"`
	Photo         string  `json:"photo"`
	IDCardDoc     string  `json:"id_card_doc"`
	CVDoc         string  `json:"cv_doc"`
}

// ToEmployee converte a requisição para a entidade do domínio
func (r *EmployeeRequest) ToEmployee(id int64) employee.Employee {
	return employee.Employee{
		ID:            id,
		Name:          r.Name,
		Role:          r.Role,
		Category:      r.Category,
		Salary:        r.Salary,
		AdmissionDate: r.AdmissionDate,
		Contact:       r.Contact,
		Photo:         r.Photo,
		IDCardDoc:     r.IDCardDoc,
		CVDoc:         r.CVDoc,
	}
}
