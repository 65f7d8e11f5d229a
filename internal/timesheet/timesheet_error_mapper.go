package timesheet

import (
	"errors"
	"net/http"

	"bancohoras/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.New(apperror.CodeNotFound, "Daily record not found", http.StatusNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_date" {
			return apperror.New(apperror.CodeConflict, "Record for this employee and date already exists", http.StatusConflict)
		}
		if pgErr.Code == "23503" {
			return apperror.New(apperror.CodeInvalidInput, "Unknown employee", http.StatusBadRequest)
		}
	}

	return err
}
