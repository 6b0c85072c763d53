package usecase

import (
	"log/slog"

	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
)

// storeError maps a repository failure to an errs kind. Errors that already
// carry a kind pass through untouched.
func storeError(logger *slog.Logger, err error, op string) error {
	if err == nil {
		return nil
	}
	if kind := errs.KindOf(err); kind != "" {
		if kind == errs.KindInternal {
			logger.Error("invariant violated", "op", op, "error", err.Error())
		}
		return err
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.NotFound("%s: not found", op)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.InvalidEntityWrap(err, "%s: value already taken", op)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.InvalidEntityWrap(err, "%s: referenced entity missing or still referenced", op)
	case infra.IsKind(err, infra.KindConflict):
		return errs.InvalidEntityWrap(err, "%s: car already rented in this interval", op)
	case infra.IsKind(err, infra.KindDuplicateRow):
		logger.Error("invariant violated", "op", op, "error", err.Error())
		return errs.Internal(err, "%s: id matched more than one row", op)
	}

	logger.Error("store failure", "op", op, "error", err.Error())
	return errs.ServiceFailure(err, "%s failed", op)
}
