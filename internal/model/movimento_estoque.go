package model

import (
	"time"

	"github.com/google/uuid"
)

// MovimentoEstoque registra cada alteração de estoque de um produto.
// Criado automaticamente ao registrar, editar ou remover pedidos e em
// ajustes manuais via upsert. Registros são imutáveis.
type MovimentoEstoque struct {
	ID               uuid.UUID `json:"id"`
	Produto          string    `json:"produto"`
	Tipo             string    `json:"tipo"`       // "venda" | "restauracao" | "ajuste_manual"
	Quantidade       int       `json:"quantidade"` // positivo = entrada, negativo = saída
	EstoqueAnterior  int       `json:"estoque_anterior"`
	EstoqueNovo      int       `json:"estoque_novo"`
	Motivo           string    `json:"motivo"`
	PedidoReferencia *int      `json:"pedido_referencia,omitempty"`
	CriadoEm         time.Time `json:"criado_em"`
}

const (
	MovimentoVenda       = "venda"
	MovimentoRestauracao = "restauracao"
	MovimentoAjuste      = "ajuste_manual"
)
