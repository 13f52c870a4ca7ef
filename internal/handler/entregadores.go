package handler

import (
	"net/http"

	"github.com/DaviHuene/AppControl/internal/dto"
	"github.com/DaviHuene/AppControl/internal/service"

	"github.com/gin-gonic/gin"
)

type EntregadoresHandler struct{ svc service.LedgerService }

func NewEntregadoresHandler(svc service.LedgerService) *EntregadoresHandler {
	return &EntregadoresHandler{svc: svc}
}

func (h *EntregadoresHandler) Upsert(c *gin.Context) {
	var req dto.UpsertEntregadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpsertEntregador(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EntregadoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarEntregadores(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EntregadoresHandler) Remover(c *gin.Context) {
	if err := h.svc.RemoverEntregador(c.Request.Context(), c.Param("nome")); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
