package cloud

import "context"

// DocumentStore é o contrato do store remoto sincronizado. Os backends
// trabalham com documentos JSON opacos; a tipagem fica no record store.
//
// GetDocument devolve (nil, nil) quando o documento não existe: ausência
// é resultado válido, não erro.
type DocumentStore interface {
	SaveDocument(ctx context.Context, collection, id string, doc []byte) error
	GetDocument(ctx context.Context, collection, id string) ([]byte, error)
	GetAllDocuments(ctx context.Context, collection string) ([][]byte, error)
	DeleteDocument(ctx context.Context, collection, id string) error
	Ping(ctx context.Context) error
}
