package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DaviHuene/AppControl/internal/dto"
	"github.com/DaviHuene/AppControl/internal/model"
	"github.com/DaviHuene/AppControl/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService é o contrato de negócio do ledger de pedidos: dono das três
// coleções persistidas (produtos, entregadores, pedidos), das invariantes de
// estoque e do cálculo financeiro.
type LedgerService interface {
	RegistrarPedido(ctx context.Context, req dto.RegistrarPedidoRequest) (*dto.PedidoResponse, error)
	EditarPedido(ctx context.Context, id int, req dto.RegistrarPedidoRequest) (*dto.PedidoResponse, error)
	RemoverPedido(ctx context.Context, id int) error
	RemoverPedidosLote(ctx context.Context, ids []int) (*dto.RemocaoLoteResponse, error)
	ListarPedidos(ctx context.Context) ([]dto.PedidoResponse, error)

	UpsertProduto(ctx context.Context, req dto.UpsertProdutoRequest) (*dto.ProdutoResponse, error)
	RemoverProduto(ctx context.Context, nome string) error
	ListarProdutos(ctx context.Context) ([]dto.ProdutoResponse, error)

	UpsertEntregador(ctx context.Context, req dto.UpsertEntregadorRequest) (*dto.EntregadorResponse, error)
	RemoverEntregador(ctx context.Context, nome string) error
	ListarEntregadores(ctx context.Context) ([]dto.EntregadorResponse, error)

	ResumoFinanceiro(ctx context.Context) (*dto.ResumoFinanceiroResponse, error)

	// Flush regrava todas as coleções no gateway (usado no shutdown).
	Flush() error
}

type ledger struct {
	// mu serializa todas as operações: um único escritor por vez, que é o
	// que dá a atomicidade efetiva das operações do ledger.
	mu sync.Mutex

	store          repository.Store
	taxaPlataforma decimal.Decimal

	produtos     []model.Produto
	entregadores []model.Entregador
	pedidos      []model.Pedido
	movimentos   []model.MovimentoEstoque

	// ultimoID nunca retrocede, mesmo quando o pedido de maior id é removido:
	// ids não são reutilizados dentro da vida do ledger.
	ultimoID int
}

// NewLedger carrega as coleções do gateway e devolve o ledger pronto.
// taxaPlataforma é a fração de acréscimo dos pedidos iFood (ex.: 0.20).
func NewLedger(store repository.Store, taxaPlataforma decimal.Decimal) (LedgerService, error) {
	l := &ledger{store: store, taxaPlataforma: taxaPlataforma}

	if err := store.Load(repository.ColecaoProdutos, &l.produtos); err != nil {
		return nil, fmt.Errorf("carregar produtos: %w", err)
	}
	if err := store.Load(repository.ColecaoEntregadores, &l.entregadores); err != nil {
		return nil, fmt.Errorf("carregar entregadores: %w", err)
	}
	if err := store.Load(repository.ColecaoPedidos, &l.pedidos); err != nil {
		return nil, fmt.Errorf("carregar pedidos: %w", err)
	}
	if err := store.Load(repository.ColecaoMovimentos, &l.movimentos); err != nil {
		return nil, fmt.Errorf("carregar movimentos: %w", err)
	}

	for i := range l.pedidos {
		if l.pedidos[i].ID > l.ultimoID {
			l.ultimoID = l.pedidos[i].ID
		}
	}
	return l, nil
}

func (l *ledger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, c := range []struct {
		nome string
		dado interface{}
	}{
		{repository.ColecaoProdutos, l.produtos},
		{repository.ColecaoEntregadores, l.entregadores},
		{repository.ColecaoPedidos, l.pedidos},
		{repository.ColecaoMovimentos, l.movimentos},
	} {
		if err := l.store.Save(c.nome, c.dado); err != nil {
			return err
		}
	}
	return nil
}

// ─── Helpers internos (chamador segura l.mu) ─────────────────────────────────

func (l *ledger) buscarProduto(nome string) *model.Produto {
	for i := range l.produtos {
		if l.produtos[i].MesmoNome(nome) {
			return &l.produtos[i]
		}
	}
	return nil
}

func (l *ledger) buscarEntregador(nome string) *model.Entregador {
	for i := range l.entregadores {
		if l.entregadores[i].MesmoNome(nome) {
			return &l.entregadores[i]
		}
	}
	return nil
}

func (l *ledger) buscarPedido(id int) (int, *model.Pedido) {
	for i := range l.pedidos {
		if l.pedidos[i].ID == id {
			return i, &l.pedidos[i]
		}
	}
	return -1, nil
}

func (l *ledger) registrarMovimento(produto string, tipo string, delta, anterior int, motivo string, pedidoID *int) {
	l.movimentos = append(l.movimentos, model.MovimentoEstoque{
		ID:               uuid.New(),
		Produto:          produto,
		Tipo:             tipo,
		Quantidade:       delta,
		EstoqueAnterior:  anterior,
		EstoqueNovo:      anterior + delta,
		Motivo:           motivo,
		PedidoReferencia: pedidoID,
		CriadoEm:         time.Now(),
	})
}

func (l *ledger) salvarProdutos() error {
	return l.store.Save(repository.ColecaoProdutos, l.produtos)
}

func (l *ledger) salvarEntregadores() error {
	return l.store.Save(repository.ColecaoEntregadores, l.entregadores)
}

func (l *ledger) salvarPedidos() error {
	return l.store.Save(repository.ColecaoPedidos, l.pedidos)
}

func (l *ledger) salvarMovimentos() error {
	return l.store.Save(repository.ColecaoMovimentos, l.movimentos)
}

func chave(nome string) string { return strings.ToLower(nome) }
