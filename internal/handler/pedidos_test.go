package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DaviHuene/AppControl/internal/config"
	"github.com/DaviHuene/AppControl/internal/dto"
	"github.com/DaviHuene/AppControl/internal/repository"
	"github.com/DaviHuene/AppControl/internal/router"
	"github.com/DaviHuene/AppControl/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoServidor(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store, err := repository.NewFileStore(dir)
	require.NoError(t, err)
	ledger, err := service.NewLedger(store, decimal.NewFromFloat(0.20))
	require.NoError(t, err)

	cfg := &config.Config{Env: "test", DataDir: dir, RateLimitPerMin: 10000}
	r := router.New(cfg, ledger)

	// Catálogo mínimo
	corpo, _ := json.Marshal(dto.UpsertProdutoRequest{
		Nome: "Pizza", Estoque: 10, Preco: decimal.NewFromFloat(25.00),
	})
	w := fazer(r, http.MethodPost, "/v1/produtos", corpo)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return r
}

func fazer(r *gin.Engine, metodo, caminho string, corpo []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(metodo, caminho, bytes.NewReader(corpo))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostPedidos_Criado(t *testing.T) {
	r := novoServidor(t)

	corpo, _ := json.Marshal(dto.RegistrarPedidoRequest{
		Cliente: "Ana",
		Tipo:    "Loja",
		Itens:   []dto.ItemPedidoRequest{{Produto: "Pizza", Quantidade: 2}},
	})
	w := fazer(r, http.MethodPost, "/v1/pedidos", corpo)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.PedidoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "pickup", resp.Motoboy)
	assert.True(t, resp.Total.Equal(decimal.NewFromFloat(50.00)))
}

func TestPostPedidos_EstoqueInsuficiente(t *testing.T) {
	r := novoServidor(t)

	corpo, _ := json.Marshal(dto.RegistrarPedidoRequest{
		Cliente: "Ana",
		Tipo:    "Loja",
		Itens:   []dto.ItemPedidoRequest{{Produto: "Pizza", Quantidade: 99}},
	})
	w := fazer(r, http.MethodPost, "/v1/pedidos", corpo)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "estoque insuficiente")
}

func TestPostPedidos_PayloadInvalido(t *testing.T) {
	r := novoServidor(t)

	w := fazer(r, http.MethodPost, "/v1/pedidos", []byte(`{`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Tipo fora do enum → 422 com erros por campo
	corpo, _ := json.Marshal(map[string]interface{}{
		"cliente": "Ana",
		"tipo":    "Drone",
		"itens":   []map[string]interface{}{{"produto": "Pizza", "quantidade": 1}},
	})
	w = fazer(r, http.MethodPost, "/v1/pedidos", corpo)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "oneof")
}

func TestDeletePedidos_NaoEncontrado(t *testing.T) {
	r := novoServidor(t)

	w := fazer(r, http.MethodDelete, "/v1/pedidos/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = fazer(r, http.MethodDelete, "/v1/pedidos/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEntregadores_EmUso(t *testing.T) {
	r := novoServidor(t)

	corpo, _ := json.Marshal(dto.UpsertEntregadorRequest{
		Nome: "João", ValorPorEntrega: decimal.NewFromFloat(7.00),
	})
	w := fazer(r, http.MethodPost, "/v1/entregadores", corpo)
	require.Equal(t, http.StatusOK, w.Code)

	corpo, _ = json.Marshal(dto.RegistrarPedidoRequest{
		Cliente: "Bia",
		Tipo:    "iFood",
		Itens:   []dto.ItemPedidoRequest{{Produto: "Pizza", Quantidade: 1}},
		Motoboy: "João",
	})
	w = fazer(r, http.MethodPost, "/v1/pedidos", corpo)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = fazer(r, http.MethodDelete, "/v1/entregadores/João", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetFinanceiroResumo(t *testing.T) {
	r := novoServidor(t)

	corpo, _ := json.Marshal(dto.RegistrarPedidoRequest{
		Cliente: "Ana",
		Tipo:    "Loja",
		Itens:   []dto.ItemPedidoRequest{{Produto: "Pizza", Quantidade: 2}},
	})
	w := fazer(r, http.MethodPost, "/v1/pedidos", corpo)
	require.Equal(t, http.StatusCreated, w.Code)

	w = fazer(r, http.MethodGet, "/v1/financeiro/resumo", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resumo dto.ResumoFinanceiroResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resumo))
	assert.True(t, resumo.VendasBrutas.Equal(decimal.NewFromFloat(50.00)))
	assert.True(t, resumo.LucroLiquido.Equal(decimal.NewFromFloat(50.00)))
	assert.Equal(t, 1, resumo.TotalPedidos)
}

func TestHealth(t *testing.T) {
	r := novoServidor(t)

	w := fazer(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}
