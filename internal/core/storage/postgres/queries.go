package postgres

import (
	"fmt"

	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
)

// SQL queries for event and account storage.

const eventColumns = `
			id, name, description,
			begin_enrollment_at, close_enrollment_at, begin_event_at, end_event_at,
			location, base_price, max_price, limit_of_enrollment,
			offline, free, event_status, manager_id`

const (
	// queryInsertEvent inserts a new event.
	// RETURNING clause retrieves the generated id.
	queryInsertEvent = `
		INSERT INTO events (
			name, description,
			begin_enrollment_at, close_enrollment_at, begin_event_at, end_event_at,
			location, base_price, max_price, limit_of_enrollment,
			offline, free, event_status, manager_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	queryFindEvent = `
		SELECT` + eventColumns + `
		FROM events
		WHERE id = $1
	`

	// queryUpdateEvent overwrites the mutable columns. manager_id is never updated.
	queryUpdateEvent = `
		UPDATE events SET
			name = $2,
			description = $3,
			begin_enrollment_at = $4,
			close_enrollment_at = $5,
			begin_event_at = $6,
			end_event_at = $7,
			location = $8,
			base_price = $9,
			max_price = $10,
			limit_of_enrollment = $11,
			offline = $12,
			free = $13,
			event_status = $14,
			updated_at = NOW()
		WHERE id = $1
	`

	queryCountEvents = `SELECT COUNT(*) FROM events`

	// queryInsertAccount inserts an account.
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for a taken email.
	queryInsertAccount = `
		INSERT INTO accounts (email, password, roles)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
		RETURNING id
	`

	queryFindAccountByEmail = `
		SELECT id, email, password, roles
		FROM accounts
		WHERE email = $1
	`

	queryFindAccountByID = `
		SELECT id, email, password, roles
		FROM accounts
		WHERE id = $1
	`
)

// sortColumns whitelists the sortable fields; the map value is interpolated into SQL.
var sortColumns = map[string]string{
	storage.SortByID:                 "id",
	storage.SortByName:               "name",
	storage.SortByBeginEventDateTime: "begin_event_at",
}

// listEventsQuery builds the paged listing query for sort.
// Unknown fields fall back to id. id is always the final tie-breaker.
func listEventsQuery(sort storage.Sort) string {
	column, ok := sortColumns[sort.Field]
	if !ok {
		column = "id"
	}
	direction := "ASC"
	if sort.Desc {
		direction = "DESC"
	}

	orderBy := fmt.Sprintf("%s %s", column, direction)
	if column != "id" {
		orderBy += ", id ASC"
	}

	return `
		SELECT` + eventColumns + `
		FROM events
		ORDER BY ` + orderBy + `
		LIMIT $1 OFFSET $2
	`
}
