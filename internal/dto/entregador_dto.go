package dto

import "github.com/shopspring/decimal"

// UpsertEntregadorRequest cria ou substitui um entregador, com a mesma
// semântica de upsert dos produtos.
type UpsertEntregadorRequest struct {
	Nome            string          `json:"nome"              validate:"required"`
	ValorPorEntrega decimal.Decimal `json:"valor_por_entrega" validate:"min=0"`
}

type EntregadorResponse struct {
	Nome            string          `json:"nome"`
	ValorPorEntrega decimal.Decimal `json:"valor_por_entrega"`
}
