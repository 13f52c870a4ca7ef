package handler

import (
	"net/http"

	"github.com/DaviHuene/AppControl/internal/dto"
	"github.com/DaviHuene/AppControl/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutosHandler struct{ svc service.LedgerService }

func NewProdutosHandler(svc service.LedgerService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// Upsert cria ou substitui um produto — POST /v1/produtos.
func (h *ProdutosHandler) Upsert(c *gin.Context) {
	var req dto.UpsertProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpsertProduto(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarProdutos(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProdutosHandler) Remover(c *gin.Context) {
	if err := h.svc.RemoverProduto(c.Request.Context(), c.Param("nome")); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
