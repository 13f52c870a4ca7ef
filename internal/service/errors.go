package service

import "fmt"

// Erros de domínio do ledger. Todos são recuperáveis no ponto de chamada:
// nenhuma operação rejeitada deixa estado parcialmente aplicado. Falhas do
// gateway de persistência propagam embrulhadas, sem tipo próprio.

// ValidacaoError indica entrada malformada (quantidade, número, campo vazio).
type ValidacaoError struct {
	Msg string
}

func (e *ValidacaoError) Error() string { return e.Msg }

func errValidacao(format string, args ...interface{}) error {
	return &ValidacaoError{Msg: fmt.Sprintf(format, args...)}
}

// NaoEncontradoError indica referência a produto, entregador ou pedido inexistente.
type NaoEncontradoError struct {
	Entidade string // "produto" | "entregador" | "pedido"
	Chave    string
}

func (e *NaoEncontradoError) Error() string {
	return fmt.Sprintf("%s %q não encontrado", e.Entidade, e.Chave)
}

// EstoqueInsuficienteError indica pedido maior que o estoque disponível.
// Disponivel é o que resta após linhas anteriores do mesmo pedido.
type EstoqueInsuficienteError struct {
	Produto    string
	Disponivel int
	Solicitado int
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente de %q: disponível %d, solicitado %d",
		e.Produto, e.Disponivel, e.Solicitado)
}

// EntregadorEmUsoError bloqueia a remoção de entregador referenciado por pedidos.
type EntregadorEmUsoError struct {
	Nome    string
	Pedidos int
}

func (e *EntregadorEmUsoError) Error() string {
	return fmt.Sprintf("entregador %q é referenciado por %d pedido(s) e não pode ser removido",
		e.Nome, e.Pedidos)
}

// ProdutoEmUsoError bloqueia a remoção de produto referenciado por pedidos.
type ProdutoEmUsoError struct {
	Nome    string
	Pedidos int
}

func (e *ProdutoEmUsoError) Error() string {
	return fmt.Sprintf("produto %q é referenciado por %d pedido(s) e não pode ser removido",
		e.Nome, e.Pedidos)
}
