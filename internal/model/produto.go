package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Os arquivos persistidos gravam preços como números JSON, não strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Produto é um item do catálogo. O nome atua como chave primária,
// comparado sem distinção de maiúsculas/minúsculas.
// As tags JSON seguem o layout dos arquivos de dados legados.
type Produto struct {
	Nome    string          `json:"name"`
	Estoque int             `json:"quantity"`
	Preco   decimal.Decimal `json:"preco"`
}

// MesmoNome compara nomes de produto de forma case-insensitive.
func (p *Produto) MesmoNome(nome string) bool {
	return strings.EqualFold(p.Nome, nome)
}
