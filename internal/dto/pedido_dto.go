package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemPedidoRequest struct {
	Produto    string `json:"produto"    validate:"required"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
}

// RegistrarPedidoRequest é o corpo de POST /v1/pedidos e de PUT /v1/pedidos/:id.
// Motoboy é obrigatório para tipos iFood e Robô e ignorado para Loja
// (pedidos de Loja gravam o sentinela de retirada).
type RegistrarPedidoRequest struct {
	Cliente string              `json:"cliente" validate:"required"`
	Tipo    string              `json:"tipo"    validate:"required,oneof=Loja iFood Robô"`
	Itens   []ItemPedidoRequest `json:"itens"   validate:"required,min=1,dive"`
	Motoboy string              `json:"motoboy"`
}

// RemocaoLoteRequest é o corpo de POST /v1/pedidos/remover-lote.
type RemocaoLoteRequest struct {
	IDs []int `json:"ids" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemPedidoResponse struct {
	Produto    string          `json:"produto"`
	Quantidade int             `json:"quantidade"`
	Preco      decimal.Decimal `json:"preco"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

type PedidoResponse struct {
	ID      int                  `json:"id"`
	Cliente string               `json:"cliente"`
	Data    string               `json:"data"`
	Tipo    string               `json:"tipo"`
	Itens   []ItemPedidoResponse `json:"itens"`
	Motoboy string               `json:"motoboy"`
	Total   decimal.Decimal      `json:"total"`
}

// RemocaoLoteResponse resume uma remoção em lote: o contrato essencial é que
// a quantidade restaurada por produto seja a soma das quantidades de todos os
// pedidos removidos que o referenciam.
type RemocaoLoteResponse struct {
	Removidos         []int          `json:"removidos"`
	NaoEncontrados    []int          `json:"nao_encontrados,omitempty"`
	EstoqueRestaurado map[string]int `json:"estoque_restaurado"`
}
