package employee

// PaymentStatus representa a situação do pagamento do salário do mês
type PaymentStatus string

// Constantes para PaymentStatus
const (
	PaymentPending PaymentStatus = "PENDENTE" // Salário ainda não pago
	PaymentPaid    PaymentStatus = "PAGO"     // Salário já pago
)

// Employee representa um funcionário da fazenda
type Employee struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Role            string        `json:"role"`
	Category        string        `json:"category"`
	Salary          float64       `json:"salary"`
	AdmissionDate   string        `json:"admission_date"`
	Contact         string        `json:"contact"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	LastPaymentDate string        `json:"last_payment_date,omitempty"`
	Photo           string        `json:"photo,omitempty"`
	IDCardDoc       string        `json:"id_card_doc,omitempty"`
	CVDoc           string        `json:"cv_doc,omitempty"`
}

// IsPaid verifica se o salário do funcionário já foi pago
func (e *Employee) IsPaid() bool {
	return e.PaymentStatus == PaymentPaid
}
