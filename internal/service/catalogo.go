package service

import (
	"context"

	"github.com/DaviHuene/AppControl/internal/dto"
	"github.com/DaviHuene/AppControl/internal/model"
)

// ─── Produtos ────────────────────────────────────────────────────────────────

// UpsertProduto cria ou substitui um produto (match de nome case-insensitive).
// Quando o produto já existe, estoque e preço são SOBRESCRITOS — reenviar um
// produto com outro estoque não incrementa o valor anterior.
func (l *ledger) UpsertProduto(ctx context.Context, req dto.UpsertProdutoRequest) (*dto.ProdutoResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if req.Nome == "" {
		return nil, errValidacao("nome do produto é obrigatório")
	}
	if req.Estoque < 0 {
		return nil, errValidacao("estoque não pode ser negativo")
	}
	if req.Preco.IsNegative() {
		return nil, errValidacao("preço não pode ser negativo")
	}

	p := l.buscarProduto(req.Nome)
	if p != nil {
		if delta := req.Estoque - p.Estoque; delta != 0 {
			l.registrarMovimento(p.Nome, model.MovimentoAjuste, delta, p.Estoque,
				"Upsert de produto", nil)
		}
		p.Estoque = req.Estoque
		p.Preco = req.Preco
	} else {
		l.produtos = append(l.produtos, model.Produto{
			Nome:    req.Nome,
			Estoque: req.Estoque,
			Preco:   req.Preco,
		})
		p = &l.produtos[len(l.produtos)-1]
		if req.Estoque != 0 {
			l.registrarMovimento(p.Nome, model.MovimentoAjuste, req.Estoque, 0,
				"Cadastro de produto", nil)
		}
	}

	if err := l.salvarProdutos(); err != nil {
		return nil, err
	}
	if err := l.salvarMovimentos(); err != nil {
		return nil, err
	}
	return &dto.ProdutoResponse{Nome: p.Nome, Estoque: p.Estoque, Preco: p.Preco}, nil
}

// RemoverProduto remove um produto do catálogo. Bloqueada enquanto qualquer
// pedido referenciar o produto.
func (l *ledger) RemoverProduto(ctx context.Context, nome string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.produtos {
		if l.produtos[i].MesmoNome(nome) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NaoEncontradoError{Entidade: "produto", Chave: nome}
	}

	emUso := 0
	for _, pedido := range l.pedidos {
		for _, item := range pedido.Itens {
			if l.produtos[idx].MesmoNome(item.Nome) {
				emUso++
				break
			}
		}
	}
	if emUso > 0 {
		return &ProdutoEmUsoError{Nome: l.produtos[idx].Nome, Pedidos: emUso}
	}

	l.produtos = append(l.produtos[:idx], l.produtos[idx+1:]...)
	return l.salvarProdutos()
}

func (l *ledger) ListarProdutos(ctx context.Context) ([]dto.ProdutoResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]dto.ProdutoResponse, 0, len(l.produtos))
	for _, p := range l.produtos {
		out = append(out, dto.ProdutoResponse{Nome: p.Nome, Estoque: p.Estoque, Preco: p.Preco})
	}
	return out, nil
}

// ─── Entregadores ────────────────────────────────────────────────────────────

func (l *ledger) UpsertEntregador(ctx context.Context, req dto.UpsertEntregadorRequest) (*dto.EntregadorResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if req.Nome == "" {
		return nil, errValidacao("nome do entregador é obrigatório")
	}
	if req.ValorPorEntrega.IsNegative() {
		return nil, errValidacao("valor por entrega não pode ser negativo")
	}

	e := l.buscarEntregador(req.Nome)
	if e != nil {
		e.ValorPorEntrega = req.ValorPorEntrega
	} else {
		l.entregadores = append(l.entregadores, model.Entregador{
			Nome:            req.Nome,
			ValorPorEntrega: req.ValorPorEntrega,
		})
		e = &l.entregadores[len(l.entregadores)-1]
	}

	if err := l.salvarEntregadores(); err != nil {
		return nil, err
	}
	return &dto.EntregadorResponse{Nome: e.Nome, ValorPorEntrega: e.ValorPorEntrega}, nil
}

// RemoverEntregador falha enquanto qualquer pedido existente referenciar o
// entregador (guarda de integridade referencial, aplicada na remoção).
func (l *ledger) RemoverEntregador(ctx context.Context, nome string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.entregadores {
		if l.entregadores[i].MesmoNome(nome) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NaoEncontradoError{Entidade: "entregador", Chave: nome}
	}

	emUso := 0
	for _, pedido := range l.pedidos {
		if pedido.Entrega() && l.entregadores[idx].MesmoNome(pedido.Motoboy) {
			emUso++
		}
	}
	if emUso > 0 {
		return &EntregadorEmUsoError{Nome: l.entregadores[idx].Nome, Pedidos: emUso}
	}

	l.entregadores = append(l.entregadores[:idx], l.entregadores[idx+1:]...)
	return l.salvarEntregadores()
}

func (l *ledger) ListarEntregadores(ctx context.Context) ([]dto.EntregadorResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]dto.EntregadorResponse, 0, len(l.entregadores))
	for _, e := range l.entregadores {
		out = append(out, dto.EntregadorResponse{Nome: e.Nome, ValorPorEntrega: e.ValorPorEntrega})
	}
	return out, nil
}
