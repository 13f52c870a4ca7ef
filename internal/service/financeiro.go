package service

import (
	"context"

	"github.com/DaviHuene/AppControl/internal/dto"

	"github.com/shopspring/decimal"
)

// ResumoFinanceiro agrega os totais do ledger:
//
//	vendas brutas  = Σ total de todos os pedidos
//	pagamento      = Σ valor_por_entrega do entregador de cada pedido de
//	                 entrega (taxa FIXA por pedido, não por unidade)
//	lucro líquido  = vendas brutas − pagamento
func (l *ledger) ResumoFinanceiro(ctx context.Context) (*dto.ResumoFinanceiroResponse, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bruto := decimal.Zero
	pagamento := decimal.Zero
	entregas := 0

	for i := range l.pedidos {
		p := &l.pedidos[i]
		bruto = bruto.Add(p.Total)
		if !p.Entrega() {
			continue
		}
		entregas++
		if e := l.buscarEntregador(p.Motoboy); e != nil {
			pagamento = pagamento.Add(e.ValorPorEntrega)
		}
	}

	return &dto.ResumoFinanceiroResponse{
		VendasBrutas:          bruto.Round(2),
		PagamentoEntregadores: pagamento.Round(2),
		LucroLiquido:          bruto.Sub(pagamento).Round(2),
		TotalPedidos:          len(l.pedidos),
		PedidosEntrega:        entregas,
	}, nil
}
