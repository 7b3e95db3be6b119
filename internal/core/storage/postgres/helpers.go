package postgres

import (
	"database/sql"
	"errors"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEventRow scans a database row into an Event struct.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanEventRow(row scanner) (*v1.Event, error) {
	var evt v1.Event
	var location sql.NullString
	var managerID sql.NullInt64
	var status string

	err := row.Scan(
		&evt.ID,
		&evt.Name,
		&evt.Description,
		&evt.BeginEnrollmentDateTime,
		&evt.CloseEnrollmentDateTime,
		&evt.BeginEventDateTime,
		&evt.EndEventDateTime,
		&location,
		&evt.BasePrice,
		&evt.MaxPrice,
		&evt.LimitOfEnrollment,
		&evt.Offline,
		&evt.Free,
		&status,
		&managerID,
	)
	if err != nil {
		return nil, err
	}

	if location.Valid {
		loc := location.String
		evt.Location = &loc
	}
	if managerID.Valid {
		evt.Manager = &v1.AccountRef{ID: managerID.Int64}
	}
	evt.EventStatus = v1.EventStatus(status)

	return &evt, nil
}

// scanAccountRow scans a row of (id, email, password, roles).
func scanAccountRow(row scanner) (*v1.Account, error) {
	var acc v1.Account
	var roles []string

	if err := row.Scan(&acc.ID, &acc.Email, &acc.Password, pq.Array(&roles)); err != nil {
		return nil, err
	}

	acc.Roles = make([]v1.AccountRole, 0, len(roles))
	for _, r := range roles {
		acc.Roles = append(acc.Roles, v1.AccountRole(r))
	}
	return &acc, nil
}

// eventArgs returns the column values shared by insert and update, in
// placeholder order starting after any leading key.
func eventArgs(event *v1.Event) []interface{} {
	var location sql.NullString
	if event.Location != nil {
		location = sql.NullString{String: *event.Location, Valid: true}
	}

	return []interface{}{
		event.Name,
		event.Description,
		event.BeginEnrollmentDateTime,
		event.CloseEnrollmentDateTime,
		event.BeginEventDateTime,
		event.EndEventDateTime,
		location,
		event.BasePrice,
		event.MaxPrice,
		event.LimitOfEnrollment,
		event.Offline,
		event.Free,
		string(event.EventStatus),
	}
}

func managerArg(event *v1.Event) sql.NullInt64 {
	if event.Manager == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: event.Manager.ID, Valid: true}
}

func roleStrings(roles []v1.AccountRole) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
