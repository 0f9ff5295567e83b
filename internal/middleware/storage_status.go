package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/petcarebr/petshop-scheduler/internal/store"
)

// StorageStatus sinaliza o modo degradado nas respostas. Degradação é
// aviso, nunca falha: a operação completa pelo cache local e o cliente
// fica sabendo que os dados podem não estar sincronizados.
func StorageStatus(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if st.Degraded() {
			c.Writer.Header().Set("X-Storage-Degraded", "true")
		}
		c.Next()
	}
}
