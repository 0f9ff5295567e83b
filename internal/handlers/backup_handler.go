package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/petcarebr/petshop-scheduler/internal/httperr"
	"github.com/petcarebr/petshop-scheduler/internal/httpresp"
	"github.com/petcarebr/petshop-scheduler/internal/store"
)

type BackupHandler struct {
	store *store.Store
}

func NewBackupHandler(st *store.Store) *BackupHandler {
	return &BackupHandler{store: st}
}

// Export devolve o snapshot completo de todas as coleções em um único
// JSON, pronto para guardar como arquivo.
func (h *BackupHandler) Export(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="petshop-backup.json"`)
	httpresp.OK(c, h.store.Export(c.Request.Context()))
}

// Import recarrega um backup exportado. Coleções ausentes no arquivo
// ficam como estão; coleções desconhecidas são ignoradas.
func (h *BackupHandler) Import(c *gin.Context) {
	var payload map[store.Collection][]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.BadRequest(c, "invalid_request", "Arquivo de backup inválido.")
		return
	}

	if err := h.store.Import(c.Request.Context(), payload); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"importado": true})
}
