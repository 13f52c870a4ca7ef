package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Entregador é um motoboy cadastrado. Recebe um valor fixo por entrega,
// independente da quantidade de itens do pedido.
type Entregador struct {
	Nome            string          `json:"nome"`
	ValorPorEntrega decimal.Decimal `json:"valor_por_entrega"`
}

func (e *Entregador) MesmoNome(nome string) bool {
	return strings.EqualFold(e.Nome, nome)
}
