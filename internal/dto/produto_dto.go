package dto

import "github.com/shopspring/decimal"

// UpsertProdutoRequest cria ou substitui um produto (match de nome
// case-insensitive). Upsert é substituição, não merge: reenviar o mesmo
// produto com outro estoque sobrescreve o valor anterior.
type UpsertProdutoRequest struct {
	Nome    string          `json:"nome"    validate:"required"`
	Estoque int             `json:"estoque" validate:"min=0"`
	Preco   decimal.Decimal `json:"preco"   validate:"min=0"`
}

type ProdutoResponse struct {
	Nome    string          `json:"nome"`
	Estoque int             `json:"estoque"`
	Preco   decimal.Decimal `json:"preco"`
}
