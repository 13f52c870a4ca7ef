package handler

import (
	"net/http"
	"strconv"

	"github.com/DaviHuene/AppControl/internal/apierror"
	"github.com/DaviHuene/AppControl/internal/dto"
	"github.com/DaviHuene/AppControl/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.LedgerService }

func NewPedidosHandler(svc service.LedgerService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

func (h *PedidosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPedido(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarPedidos(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Editar(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.RegistrarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.EditarPedido(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Remover(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.RemoverPedido(c.Request.Context(), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PedidosHandler) RemoverLote(c *gin.Context) {
	var req dto.RemocaoLoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RemoverPedidosLote(c.Request.Context(), req.IDs)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
