package handler

import (
	"net/http"

	"github.com/DaviHuene/AppControl/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanceiroHandler struct{ svc service.LedgerService }

func NewFinanceiroHandler(svc service.LedgerService) *FinanceiroHandler {
	return &FinanceiroHandler{svc: svc}
}

// Resumo — GET /v1/financeiro/resumo.
func (h *FinanceiroHandler) Resumo(c *gin.Context) {
	resp, err := h.svc.ResumoFinanceiro(c.Request.Context())
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
