package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrCrefitoAlreadyExists = errors.New("crefito already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAccountLocked        = errors.New("account locked after too many failed login attempts")
	ErrWrongCurrentPassword = errors.New("current password does not match")
	ErrAccountInactive      = errors.New("account is inactive")

	ErrPractitionerNotFound = errors.New("practitioner not found")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrAssessmentNotFound   = errors.New("assessment not found")
	ErrAttachmentNotFound   = errors.New("attachment not found")
	ErrProgressNoteNotFound = errors.New("progress note not found")
	ErrProcedureNotFound    = errors.New("procedure not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAuditLogNotFound     = errors.New("audit log entry not found")

	ErrPatientErased     = errors.New("patient record erased under LGPD")
	ErrErasureBlocked    = errors.New("erasure blocked by future appointments")
	ErrSlotConflict      = errors.New("another appointment occupies this time slot")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid datetime format, use RFC 3339")
	ErrInvalidJSONBlock  = errors.New("malformed JSON document")
	ErrInvalidDecimal    = errors.New("invalid decimal value")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name.
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
