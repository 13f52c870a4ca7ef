// Package repository implementa o Persistence Gateway: cada coleção é um
// conjunto ordenado de registros carregado/gravado por inteiro. O ledger
// depende apenas da interface Store, permitindo stubs em memória nos testes.
package repository

// Nomes das coleções persistidas.
const (
	ColecaoProdutos     = "produtos"
	ColecaoEntregadores = "entregadores"
	ColecaoPedidos      = "pedidos"
	ColecaoMovimentos   = "movimentos"
)

// Store é o contrato mínimo que o ledger precisa de um backend durável:
// Load devolve a coleção completa (vazia quando ainda não existe) e Save
// substitui a coleção inteira de forma atômica.
type Store interface {
	Load(colecao string, out interface{}) error
	Save(colecao string, registros interface{}) error
}
