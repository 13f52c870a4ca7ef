package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Health responde o health check. Verifica se o diretório de dados segue
// acessível; nunca expõe caminhos completos ou detalhes internos.
func Health(dataDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		storageStatus := "ok"
		if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
			storageStatus = "error"
		}

		status := http.StatusOK
		if storageStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"storage": storageStatus,
		})
	}
}
