package invoice

import (
	"time"

	"github.com/quintadosovos/erp-avicola/internal/domain/cart"
)

// Invoice representa uma fatura emitida por um checkout. É uma cópia
// imutável do carrinho no momento da venda: edições posteriores de
// produtos não alteram faturas já emitidas.
type Invoice struct {
	Number int64       `json:"number"`
	Date   string      `json:"date"`
	Items  []cart.Item `json:"items"`
	Total  float64     `json:"total"`
}

// FirstNumber é o primeiro número de fatura emitido pelo sistema
const FirstNumber = 10000

// dateLayout é o formato de exibição da data da fatura (pt)
const dateLayout = "02/01/2006, 15:04:05"

// New emite uma fatura com o número informado a partir dos itens vendidos.
// Os itens são copiados, nunca referenciados.
func New(number int64, items []cart.Item, now time.Time) Invoice {
	return Invoice{
		Number: number,
		Date:   now.Format(dateLayout),
		Items:  cart.Copy(items),
		Total:  cart.Total(items),
	}
}
