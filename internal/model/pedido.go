package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pedido. Pedidos iFood carregam o acréscimo da plataforma
// embutido no preço unitário capturado; pedidos Robô são precificados
// como Loja mas exigem entregador para o despacho.
const (
	TipoLoja  = "Loja"
	TipoIFood = "iFood"
	TipoRobo  = "Robô"
)

// MotoboyRetirada é o valor sentinela gravado em pedidos de Loja,
// que não têm entregador atribuído.
const MotoboyRetirada = "pickup"

// FormatoData é o formato legado das datas persistidas (DD/MM/YYYY HH:MM).
const FormatoData = "02/01/2006 15:04"

// TipoValido reporta se tipo é um dos três canais de venda conhecidos.
func TipoValido(tipo string) bool {
	return tipo == TipoLoja || tipo == TipoIFood || tipo == TipoRobo
}

// ItemPedido é uma linha de pedido. Preco é o preço unitário capturado no
// momento do registro (já com acréscimo de plataforma, quando aplicável) —
// edições posteriores do catálogo não o alteram.
type ItemPedido struct {
	Nome       string          `json:"nome"`
	Quantidade int             `json:"quantidade"`
	Preco      decimal.Decimal `json:"preco"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// Pedido é um pedido registrado. IDs são atribuídos como max(ids)+1 e
// nunca reutilizados dentro do mesmo ledger. Total é derivado dos itens.
type Pedido struct {
	ID      int             `json:"id"`
	Cliente string          `json:"cliente"`
	Data    string          `json:"data"`
	Tipo    string          `json:"tipo"`
	Itens   []ItemPedido    `json:"produtos"`
	Motoboy string          `json:"motoboy"`
	Total   decimal.Decimal `json:"total"`
}

// CriadoEm interpreta o campo Data no formato legado. Retorna o zero value
// quando a data gravada não é parseável.
func (p *Pedido) CriadoEm() time.Time {
	t, err := time.Parse(FormatoData, p.Data)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Entrega reporta se o pedido sai por um canal com entregador (iFood ou Robô).
func (p *Pedido) Entrega() bool {
	return p.Tipo != TipoLoja
}
