// cmd/seeddata/main.go — Semeia um catálogo de demonstração.
// Uso: go run cmd/seeddata/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/DaviHuene/AppControl/internal/dto"
	"github.com/DaviHuene/AppControl/internal/repository"
	"github.com/DaviHuene/AppControl/internal/service"

	"github.com/shopspring/decimal"
)

func main() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	store, err := repository.NewFileStore(dataDir)
	if err != nil {
		log.Fatalf("data dir error: %v", err)
	}
	ledger, err := service.NewLedger(store, decimal.NewFromFloat(0.20))
	if err != nil {
		log.Fatalf("ledger error: %v", err)
	}

	ctx := context.Background()

	produtos := []dto.UpsertProdutoRequest{
		{Nome: "Frango Assado", Estoque: 20, Preco: decimal.NewFromFloat(45.00)},
		{Nome: "Frango a Passarinho", Estoque: 15, Preco: decimal.NewFromFloat(38.50)},
		{Nome: "Maionese Caseira", Estoque: 30, Preco: decimal.NewFromFloat(8.00)},
		{Nome: "Refrigerante 2L", Estoque: 24, Preco: decimal.NewFromFloat(12.00)},
		{Nome: "Farofa", Estoque: 25, Preco: decimal.NewFromFloat(6.50)},
	}
	for _, p := range produtos {
		if _, err := ledger.UpsertProduto(ctx, p); err != nil {
			log.Fatalf("produto %q: %v", p.Nome, err)
		}
	}

	entregadores := []dto.UpsertEntregadorRequest{
		{Nome: "João", ValorPorEntrega: decimal.NewFromFloat(7.00)},
		{Nome: "Marcos", ValorPorEntrega: decimal.NewFromFloat(8.50)},
	}
	for _, e := range entregadores {
		if _, err := ledger.UpsertEntregador(ctx, e); err != nil {
			log.Fatalf("entregador %q: %v", e.Nome, err)
		}
	}

	fmt.Printf("✅ Catálogo de demonstração gravado em %s (%d produtos, %d entregadores)\n",
		dataDir, len(produtos), len(entregadores))
}
