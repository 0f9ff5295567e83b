package store

import (
	"context"
	"encoding/json"
)

// Export tira um snapshot de todas as coleções em um único mapa
// coleção → documentos, pronto para serializar como arquivo de backup.
func (s *Store) Export(ctx context.Context) map[Collection][]json.RawMessage {
	out := make(map[Collection][]json.RawMessage, len(AllCollections))

	for _, col := range AllCollections {
		// força a leitura remota antes do snapshot, quando possível
		s.GetAll(ctx, col)

		s.mu.RLock()
		docs := make([]json.RawMessage, 0, len(s.cache[col]))
		for _, e := range s.cache[col] {
			docs = append(docs, append(json.RawMessage{}, e.data...))
		}
		s.mu.RUnlock()

		out[col] = docs
	}

	return out
}

// Import substitui as coleções presentes no backup, documento a
// documento, para que o remoto e o cache local recebam ambos a carga.
// Coleções desconhecidas no arquivo são ignoradas.
func (s *Store) Import(ctx context.Context, data map[Collection][]json.RawMessage) error {
	for col, docs := range data {
		if _, known := prototypes[col]; !known {
			continue
		}

		for _, doc := range docs {
			rec := s.decode(col, doc)
			if rec == nil || rec.GetID() == "" {
				continue
			}
			if _, err := s.Save(ctx, col, rec); err != nil {
				return err
			}
		}
	}

	return nil
}
