package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/DaviHuene/AppControl/internal/apierror"
	"github.com/DaviHuene/AppControl/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Registra decimal.Decimal como tipo numérico para que tags como
	// min=0 e gt=0 funcionem sem panic ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate faz o bind do corpo JSON e roda as tags do
// go-playground/validator. Retorna false já tendo escrito a resposta de
// erro — o chamador deve retornar imediatamente.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondErro mapeia a taxonomia de erros do ledger para códigos HTTP.
// Erros fora da taxonomia (falha de I/O do gateway) vão para o ErrorHandler
// global, que responde 500 sem vazar detalhes.
func respondErro(c *gin.Context, err error) {
	var (
		validacao     *service.ValidacaoError
		naoEncontrado *service.NaoEncontradoError
		estoque       *service.EstoqueInsuficienteError
		entregador    *service.EntregadorEmUsoError
		produto       *service.ProdutoEmUsoError
	)
	switch {
	case errors.As(err, &validacao):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.As(err, &naoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &estoque), errors.As(err, &entregador), errors.As(err, &produto):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}
