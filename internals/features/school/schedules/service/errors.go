// file: internals/features/school/schedules/service/errors.go
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

/* =========================
   Error taxonomy
   =========================
   Semua error per-request dan recoverable; controller yang memetakan
   ke status HTTP (400 / 404 / 409 / 503).
*/

// ValidationError: input malformed / kontradiktif (ditolak sebelum sentuh DB).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError: id tidak ada ATAU milik tenant lain — sengaja tidak dibedakan
// supaya keberadaan data lintas tenant tidak bocor.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " tidak ditemukan" }

// ConflictKind membedakan bentrok kelas vs bentrok guru.
type ConflictKind string

const (
	ClassConflict   ConflictKind = "class_conflict"
	TeacherConflict ConflictKind = "teacher_conflict"
)

// ConflictError: kandidat overlap dengan entry aktif lain.
// ConflictingScheduleID = bukti pertama yang ditemukan per kategori.
type ConflictError struct {
	Kind                  ConflictKind
	ConflictingScheduleID uuid.UUID
}

func (e *ConflictError) Error() string {
	if e.Kind == TeacherConflict {
		return fmt.Sprintf("bentrok jadwal guru dengan entry %s", e.ConflictingScheduleID)
	}
	return fmt.Sprintf("bentrok jadwal kelas dengan entry %s", e.ConflictingScheduleID)
}

// ErrTransient: kegagalan serialisasi/lock yang sudah di-retry sekali dan
// tetap gagal; caller cukup submit ulang.
var ErrTransient = errors.New("transaksi jadwal gagal sementara, silakan coba lagi")
