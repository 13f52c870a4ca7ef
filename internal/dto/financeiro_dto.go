package dto

import "github.com/shopspring/decimal"

// ResumoFinanceiroResponse é o retorno de GET /v1/financeiro/resumo.
// PagamentoEntregadores usa o modelo de taxa fixa por pedido: um valor por
// pedido de entrega, independente da quantidade de itens.
type ResumoFinanceiroResponse struct {
	VendasBrutas          decimal.Decimal `json:"vendas_brutas"`
	PagamentoEntregadores decimal.Decimal `json:"pagamento_entregadores"`
	LucroLiquido          decimal.Decimal `json:"lucro_liquido"`
	TotalPedidos          int             `json:"total_pedidos"`
	PedidosEntrega        int             `json:"pedidos_entrega"`
}
