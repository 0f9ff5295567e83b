package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ======================================================
// Erros de negócio tipados
// ======================================================

// ValidationError indica campos obrigatórios ausentes ou malformados.
// Nenhuma escrita parcial acontece quando ele é retornado.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("dados obrigatórios não informados: %s", strings.Join(e.Fields, ", "))
	}
	return e.Reason
}

func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}

func MissingFields(fields ...string) error {
	return &ValidationError{Fields: fields}
}

// SchedulingConflictError indica sobreposição de horário com outro
// agendamento não cancelado do mesmo profissional.
type SchedulingConflictError struct {
	ConflictingID string
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("conflito de horário com o agendamento %s", e.ConflictingID)
}

func Conflict(conflictingID string) error {
	return &SchedulingConflictError{ConflictingID: conflictingID}
}

// NotFoundError indica referência (cliente, pet, profissional,
// agendamento, lembrete) que não resolve.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s não encontrado: %s", e.Collection, e.ID)
}

func NotFound(collection, id string) error {
	return &NotFoundError{Collection: collection, ID: id}
}

// ReferentialIntegrityError indica exclusão recusada porque registros
// dependentes ainda referenciam o id.
type ReferentialIntegrityError struct {
	Collection string
	Dependents string
	Count      int
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf(
		"não é possível excluir %s: %d registro(s) em %s vinculados",
		e.Collection, e.Count, e.Dependents,
	)
}

// StorageDegradedError sinaliza que o store remoto está inacessível e a
// operação seguiu pelo cache local. É um aviso: a operação completou.
type StorageDegradedError struct {
	Op    string
	Cause error
}

func (e *StorageDegradedError) Error() string {
	return fmt.Sprintf("store remoto indisponível em %s: %v", e.Op, e.Cause)
}

func (e *StorageDegradedError) Unwrap() error {
	return e.Cause
}

// ======================================================
// Helpers de classificação
// ======================================================

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsConflict(err error) bool {
	var c *SchedulingConflictError
	return errors.As(err, &c)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsReferentialIntegrity(err error) bool {
	var r *ReferentialIntegrityError
	return errors.As(err, &r)
}
