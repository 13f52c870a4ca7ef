package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DaviHuene/AppControl/internal/dto"
	"github.com/DaviHuene/AppControl/internal/model"

	"github.com/shopspring/decimal"
)

// ─── RegistrarPedido ─────────────────────────────────────────────────────────
// Ordem do fluxo:
//   1. Validação completa (produtos existem, quantidades positivas, estoque
//      suficiente) — falha na primeira violação, sem mutação parcial.
//   2. Captura do preço unitário no momento do pedido; pedidos iFood aplicam
//      o acréscimo da plataforma arredondado a 2 casas ANTES de multiplicar
//      pela quantidade (política legada, preservada à risca).
//   3. Débito do estoque, id = max+1, persistência write-through.

func (l *ledger) RegistrarPedido(ctx context.Context, req dto.RegistrarPedidoRequest) (*dto.PedidoResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	pedido, err := l.montarPedido(req, nil)
	if err != nil {
		return nil, err
	}

	pedido.ID = l.proximoID()
	l.debitarEstoque(pedido)
	l.pedidos = append(l.pedidos, *pedido)

	if err := l.salvarProdutos(); err != nil {
		return nil, err
	}
	if err := l.salvarPedidos(); err != nil {
		return nil, err
	}
	if err := l.salvarMovimentos(); err != nil {
		return nil, err
	}
	return pedidoParaResponse(pedido), nil
}

// montarPedido valida a requisição e monta o pedido precificado SEM mutar
// nenhum estado. estoqueExtra soma disponibilidade adicional por produto
// (chave minúscula) — usado pela edição, que valida o pedido novo como se o
// estoque do pedido antigo já tivesse sido restaurado.
func (l *ledger) montarPedido(req dto.RegistrarPedidoRequest, estoqueExtra map[string]int) (*model.Pedido, error) {
	if req.Cliente == "" {
		return nil, errValidacao("cliente é obrigatório")
	}
	if !model.TipoValido(req.Tipo) {
		return nil, errValidacao("tipo de pedido inválido: %q", req.Tipo)
	}
	if len(req.Itens) == 0 {
		return nil, errValidacao("pedido sem itens")
	}

	motoboy := model.MotoboyRetirada
	if req.Tipo != model.TipoLoja {
		if req.Motoboy == "" {
			return nil, errValidacao("motoboy é obrigatório para pedidos %s", req.Tipo)
		}
		e := l.buscarEntregador(req.Motoboy)
		if e == nil {
			return nil, &NaoEncontradoError{Entidade: "entregador", Chave: req.Motoboy}
		}
		motoboy = e.Nome
	}

	// Quantidades acumuladas por produto: duas linhas do mesmo produto não
	// podem, juntas, estourar o estoque.
	solicitado := make(map[string]int)
	itens := make([]model.ItemPedido, 0, len(req.Itens))
	total := decimal.Zero

	for _, linha := range req.Itens {
		if linha.Quantidade <= 0 {
			return nil, errValidacao("quantidade inválida para %q: %d", linha.Produto, linha.Quantidade)
		}
		p := l.buscarProduto(linha.Produto)
		if p == nil {
			return nil, &NaoEncontradoError{Entidade: "produto", Chave: linha.Produto}
		}

		k := chave(p.Nome)
		disponivel := p.Estoque + estoqueExtra[k] - solicitado[k]
		if linha.Quantidade > disponivel {
			return nil, &EstoqueInsuficienteError{
				Produto:    p.Nome,
				Disponivel: disponivel,
				Solicitado: linha.Quantidade,
			}
		}
		solicitado[k] += linha.Quantidade

		preco := p.Preco
		if req.Tipo == model.TipoIFood {
			preco = preco.Mul(decimal.NewFromInt(1).Add(l.taxaPlataforma)).Round(2)
		}
		subtotal := preco.Mul(decimal.NewFromInt(int64(linha.Quantidade))).Round(2)
		total = total.Add(subtotal)

		itens = append(itens, model.ItemPedido{
			Nome:       p.Nome,
			Quantidade: linha.Quantidade,
			Preco:      preco,
			Subtotal:   subtotal,
		})
	}

	return &model.Pedido{
		Cliente: req.Cliente,
		Data:    time.Now().Format(model.FormatoData),
		Tipo:    req.Tipo,
		Itens:   itens,
		Motoboy: motoboy,
		Total:   total.Round(2),
	}, nil
}

func (l *ledger) proximoID() int {
	l.ultimoID++
	return l.ultimoID
}

func (l *ledger) debitarEstoque(pedido *model.Pedido) {
	id := pedido.ID
	for _, item := range pedido.Itens {
		p := l.buscarProduto(item.Nome)
		l.registrarMovimento(p.Nome, model.MovimentoVenda, -item.Quantidade, p.Estoque,
			fmt.Sprintf("Pedido #%d de %s", id, pedido.Cliente), &id)
		p.Estoque -= item.Quantidade
	}
}

// restaurarEstoque devolve ao estoque as quantidades de um pedido. Linhas
// cujo produto já não existe no catálogo são puladas em silêncio (o produto
// foi removido depois do registro do pedido).
func (l *ledger) restaurarEstoque(pedido *model.Pedido, motivo string) {
	for _, item := range pedido.Itens {
		p := l.buscarProduto(item.Nome)
		if p == nil {
			continue
		}
		id := pedido.ID
		l.registrarMovimento(p.Nome, model.MovimentoRestauracao, item.Quantidade, p.Estoque, motivo, &id)
		p.Estoque += item.Quantidade
	}
}

// ─── RemoverPedido ───────────────────────────────────────────────────────────

func (l *ledger) RemoverPedido(ctx context.Context, id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, pedido := l.buscarPedido(id)
	if pedido == nil {
		return &NaoEncontradoError{Entidade: "pedido", Chave: fmt.Sprint(id)}
	}

	l.restaurarEstoque(pedido, fmt.Sprintf("Remoção do pedido #%d", id))
	l.pedidos = append(l.pedidos[:idx], l.pedidos[idx+1:]...)

	if err := l.salvarProdutos(); err != nil {
		return err
	}
	if err := l.salvarPedidos(); err != nil {
		return err
	}
	return l.salvarMovimentos()
}

// ─── EditarPedido ────────────────────────────────────────────────────────────
// Modelada como remover-e-recriar, mas validando o pedido novo ANTES de
// desfazer o antigo: uma edição inválida deixa o ledger exatamente como
// estava. O pedido recriado recebe um id novo.

func (l *ledger) EditarPedido(ctx context.Context, id int, req dto.RegistrarPedidoRequest) (*dto.PedidoResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, antigo := l.buscarPedido(id)
	if antigo == nil {
		return nil, &NaoEncontradoError{Entidade: "pedido", Chave: fmt.Sprint(id)}
	}

	// Disponibilidade efetiva: estoque atual + o que o pedido antigo devolve.
	extra := make(map[string]int)
	for _, item := range antigo.Itens {
		extra[chave(item.Nome)] += item.Quantidade
	}

	novo, err := l.montarPedido(req, extra)
	if err != nil {
		return nil, err
	}

	l.restaurarEstoque(antigo, fmt.Sprintf("Edição do pedido #%d", id))
	l.pedidos = append(l.pedidos[:idx], l.pedidos[idx+1:]...)

	novo.ID = l.proximoID()
	l.debitarEstoque(novo)
	l.pedidos = append(l.pedidos, *novo)

	if err := l.salvarProdutos(); err != nil {
		return nil, err
	}
	if err := l.salvarPedidos(); err != nil {
		return nil, err
	}
	if err := l.salvarMovimentos(); err != nil {
		return nil, err
	}
	return pedidoParaResponse(novo), nil
}

// ─── RemoverPedidosLote ──────────────────────────────────────────────────────
// Agrega o estoque a restaurar por produto ANTES de qualquer mutação e aplica
// uma única restauração por produto. O contrato essencial: quantidade
// restaurada por produto == soma das quantidades dos pedidos removidos.

func (l *ledger) RemoverPedidosLote(ctx context.Context, ids []int) (*dto.RemocaoLoteResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	alvo := make(map[int]bool, len(ids))
	for _, id := range ids {
		alvo[id] = true
	}

	resumo := &dto.RemocaoLoteResponse{EstoqueRestaurado: make(map[string]int)}
	restaurar := make(map[string]int) // chave minúscula → quantidade agregada
	nomeCanonico := make(map[string]string)

	restantes := l.pedidos[:0:0]
	for _, p := range l.pedidos {
		if !alvo[p.ID] {
			restantes = append(restantes, p)
			continue
		}
		resumo.Removidos = append(resumo.Removidos, p.ID)
		delete(alvo, p.ID)
		for _, item := range p.Itens {
			prod := l.buscarProduto(item.Nome)
			if prod == nil {
				continue
			}
			restaurar[chave(prod.Nome)] += item.Quantidade
			nomeCanonico[chave(prod.Nome)] = prod.Nome
		}
	}
	for id := range alvo {
		resumo.NaoEncontrados = append(resumo.NaoEncontrados, id)
	}

	if len(resumo.Removidos) == 0 {
		return resumo, nil
	}

	for k, qtd := range restaurar {
		p := l.buscarProduto(nomeCanonico[k])
		l.registrarMovimento(p.Nome, model.MovimentoRestauracao, qtd, p.Estoque,
			"Remoção de pedidos em lote", nil)
		p.Estoque += qtd
		resumo.EstoqueRestaurado[p.Nome] = qtd
	}
	l.pedidos = restantes

	if err := l.salvarProdutos(); err != nil {
		return nil, err
	}
	if err := l.salvarPedidos(); err != nil {
		return nil, err
	}
	if err := l.salvarMovimentos(); err != nil {
		return nil, err
	}
	return resumo, nil
}

// ─── ListarPedidos ───────────────────────────────────────────────────────────

func (l *ledger) ListarPedidos(ctx context.Context) ([]dto.PedidoResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]dto.PedidoResponse, 0, len(l.pedidos))
	for i := range l.pedidos {
		out = append(out, *pedidoParaResponse(&l.pedidos[i]))
	}
	return out, nil
}

func pedidoParaResponse(p *model.Pedido) *dto.PedidoResponse {
	itens := make([]dto.ItemPedidoResponse, 0, len(p.Itens))
	for _, item := range p.Itens {
		itens = append(itens, dto.ItemPedidoResponse{
			Produto:    item.Nome,
			Quantidade: item.Quantidade,
			Preco:      item.Preco,
			Subtotal:   item.Subtotal,
		})
	}
	return &dto.PedidoResponse{
		ID:      p.ID,
		Cliente: p.Cliente,
		Data:    p.Data,
		Tipo:    p.Tipo,
		Itens:   itens,
		Motoboy: p.Motoboy,
		Total:   p.Total,
	}
}
