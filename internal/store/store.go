package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petcarebr/petshop-scheduler/internal/apperr"
	"github.com/petcarebr/petshop-scheduler/internal/infra/cloud"
	"github.com/petcarebr/petshop-scheduler/internal/metrics"
)

// ======================================================
// Record Store
// ======================================================
//
// Fachada CRUD + query sobre coleções nomeadas. Leituras e escritas
// preferem o store remoto quando alcançável; qualquer falha remota cai
// para o cache local, que é o piso de durabilidade. O cache local guarda
// o documento JSON inteiro e cada leitura decodifica uma cópia nova, de
// modo que chamadores nunca compartilham ponteiros mutáveis.

type cacheEntry struct {
	id   string
	data json.RawMessage
}

type Store struct {
	cloud   cloud.DocumentStore // nil = modo somente local
	timeout time.Duration
	log     *zap.Logger
	metrics *metrics.Metrics

	mu    sync.RWMutex
	cache map[Collection][]cacheEntry

	// sequência por coleção, incrementada a cada escrita local. Um
	// snapshot remoto buscado antes de uma escrita local chega com a
	// sequência antiga e é descartado em vez de apagar a escrita.
	seq map[Collection]uint64

	degraded atomic.Bool
}

func New(
	cloudStore cloud.DocumentStore,
	remoteTimeout time.Duration,
	log *zap.Logger,
	m *metrics.Metrics,
) *Store {
	s := &Store{
		cloud:   cloudStore,
		timeout: remoteTimeout,
		log:     log,
		metrics: m,
		cache:   make(map[Collection][]cacheEntry),
		seq:     make(map[Collection]uint64),
	}

	for _, col := range AllCollections {
		s.cache[col] = []cacheEntry{}
	}

	return s
}

// Degraded informa se a última interação remota falhou.
func (s *Store) Degraded() bool {
	return s.degraded.Load()
}

// Ping sonda o backend remoto e devolve StorageDegradedError com a
// causa quando ele está fora. É um aviso, não uma falha: o store segue
// operando pelo cache local.
func (s *Store) Ping(ctx context.Context) error {
	if s.cloud == nil {
		return &apperr.StorageDegradedError{
			Op:    "ping",
			Cause: errors.New("sem backend remoto configurado"),
		}
	}

	rctx, cancel := s.remoteCtx(ctx)
	defer cancel()

	if err := s.cloud.Ping(rctx); err != nil {
		if s.degraded.CompareAndSwap(false, true) {
			s.metrics.CountDegraded()
		}
		s.log.Warn("ping do store remoto falhou", zap.Error(err))
		return &apperr.StorageDegradedError{Op: "ping", Cause: err}
	}

	s.markHealthy()
	return nil
}

func (s *Store) remoteCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) markDegraded(op string, collection Collection, err error) {
	s.metrics.CountFallback(op)
	if s.degraded.CompareAndSwap(false, true) {
		s.metrics.CountDegraded()
	}
	s.log.Warn("store remoto indisponível, usando cache local",
		zap.String("op", op),
		zap.String("collection", string(collection)),
		zap.Error(err),
	)
}

func (s *Store) markHealthy() {
	if s.degraded.CompareAndSwap(true, false) {
		s.log.Info("store remoto acessível novamente")
	}
}

// ======================================================
// Operações genéricas
// ======================================================

// GetAll busca a coleção no remoto e, quando ele responde, sobrescreve o
// cache local inteiro (remoto é autoritativo quando alcançável). Em falha
// remota serve o cache local. Nunca falha: sem dados = sequência vazia.
func (s *Store) GetAll(ctx context.Context, collection Collection) []Record {
	if s.cloud != nil {
		s.mu.RLock()
		since := s.seq[collection]
		s.mu.RUnlock()

		rctx, cancel := s.remoteCtx(ctx)
		docs, err := s.cloud.GetAllDocuments(rctx, string(collection))
		cancel()

		if err != nil {
			s.markDegraded("getAll", collection, err)
		} else {
			s.markHealthy()
			s.replaceLocal(collection, docs, since)
		}
	}

	return s.decodeSnapshot(collection)
}

// GetByID segue o mesmo contrato remoto-primeiro/fallback-local.
// Ausência é resultado válido: devolve nil sem erro.
func (s *Store) GetByID(ctx context.Context, collection Collection, id string) Record {
	if id == "" {
		return nil
	}

	if s.cloud != nil {
		rctx, cancel := s.remoteCtx(ctx)
		doc, err := s.cloud.GetDocument(rctx, string(collection), id)
		cancel()

		if err != nil {
			s.markDegraded("getById", collection, err)
		} else {
			s.markHealthy()
			if doc == nil {
				return nil
			}
			// mantém o cache aquecido com o documento autoritativo
			s.upsertLocal(collection, id, doc)
			return s.decode(collection, doc)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.cache[collection] {
		if e.id == id {
			return s.decode(collection, e.data)
		}
	}
	return nil
}

// Save faz upsert por id: carimba updatedAt (e createdAt na primeira
// escrita), tenta o remoto e espelha incondicionalmente no cache local,
// que fica aquecido mesmo quando o remoto responde. A serialização usa
// omitempty, então atributos ausentes nunca chegam ao remoto.
func (s *Store) Save(ctx context.Context, collection Collection, rec Record) (Record, error) {
	if rec.GetID() == "" {
		return nil, apperr.Validation("registro sem id não pode ser salvo")
	}

	s.mu.Lock()
	for _, e := range s.cache[collection] {
		if e.id == rec.GetID() {
			// preserva o createdAt original em upserts
			var existing struct {
				CreatedAt time.Time `json:"createdAt"`
			}
			_ = json.Unmarshal(e.data, &existing)
			if !existing.CreatedAt.IsZero() {
				rec.StampTimes(existing.CreatedAt)
			}
			break
		}
	}
	s.mu.Unlock()

	rec.StampTimes(time.Now())

	doc, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("serializar %s/%s: %w", collection, rec.GetID(), err)
	}

	if s.cloud != nil {
		rctx, cancel := s.remoteCtx(ctx)
		err := s.cloud.SaveDocument(rctx, string(collection), rec.GetID(), doc)
		cancel()

		if err != nil {
			s.markDegraded("save", collection, err)
		} else {
			s.markHealthy()
		}
	}

	s.upsertLocal(collection, rec.GetID(), doc)
	return rec, nil
}

// Delete é idempotente: excluir um id ausente não é erro. Devolve se o
// documento existia no snapshot local.
func (s *Store) Delete(ctx context.Context, collection Collection, id string) bool {
	if s.cloud != nil {
		rctx, cancel := s.remoteCtx(ctx)
		err := s.cloud.DeleteDocument(rctx, string(collection), id)
		cancel()

		if err != nil {
			s.markDegraded("delete", collection, err)
		} else {
			s.markHealthy()
		}
	}

	return s.removeLocal(collection, id)
}

// Query filtra o snapshot local de forma síncrona. Usada nas checagens de
// relacionamento que não podem bloquear em rede.
func (s *Store) Query(collection Collection, predicate func(Record) bool) []Record {
	out := []Record{}
	for _, rec := range s.decodeSnapshot(collection) {
		if predicate(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// GenerateID devolve ids opacos e estáveis: prefixo, timestamp em base
// 36 e um fragmento aleatório.
func (s *Store) GenerateID(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s_%s_%s",
		prefix,
		strconv.FormatInt(time.Now().UnixMilli(), 36),
		u.String()[:8],
	)
}

// ======================================================
// Cache local (substituição de coleção inteira)
// ======================================================

// replaceLocal aplica um snapshot remoto inteiro, desde que nenhuma
// escrita local tenha acontecido entre a leitura de `since` e agora.
// Snapshot velho perdendo para escrita nova: a próxima leitura remota
// reconcilia.
func (s *Store) replaceLocal(collection Collection, docs [][]byte, since uint64) {
	entries := make([]cacheEntry, 0, len(docs))
	for _, doc := range docs {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(doc, &head); err != nil || head.ID == "" {
			continue
		}
		entries = append(entries, cacheEntry{id: head.ID, data: append(json.RawMessage{}, doc...)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq[collection] != since {
		s.log.Warn("snapshot remoto obsoleto descartado",
			zap.String("collection", string(collection)),
		)
		return
	}
	s.cache[collection] = entries
}

func (s *Store) upsertLocal(collection Collection, id string, doc []byte) {
	data := append(json.RawMessage{}, doc...)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq[collection]++

	entries := s.cache[collection]
	for i, e := range entries {
		if e.id == id {
			entries[i].data = data
			return
		}
	}
	s.cache[collection] = append(entries, cacheEntry{id: id, data: data})
}

func (s *Store) removeLocal(collection Collection, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.cache[collection]
	for i, e := range entries {
		if e.id == id {
			s.seq[collection]++
			s.cache[collection] = append(entries[:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) decodeSnapshot(collection Collection) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.cache[collection]))
	for _, e := range s.cache[collection] {
		if rec := s.decode(collection, e.data); rec != nil {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Store) decode(collection Collection, doc []byte) Record {
	newFn, ok := prototypes[collection]
	if !ok {
		return nil
	}

	rec := newFn()
	if err := json.Unmarshal(doc, rec); err != nil {
		s.log.Warn("documento corrompido ignorado",
			zap.String("collection", string(collection)),
			zap.Error(err),
		)
		return nil
	}
	return rec
}
