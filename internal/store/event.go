package store

import (
	"context"
	"fmt"

	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const eventDatesConstraint = "events_end_after_start"

// eventSelect 帶出建立者姓名與報名統計
func eventSelect(source string) string {
	return `SELECT e.id, e.title, e.description, e.event_date, e.event_end_date, e.venue,
		e.district, e.panchayat, e.ward, e.category, e.max_participants,
		e.contact_phone, e.contact_email, e.created_by, e.is_active, e.created_at, e.updated_at,
		u.name, COALESCE(r.registration_count, 0), COALESCE(r.total_attendees, 0)
	 FROM ` + source + ` e
	 JOIN users u ON u.id = e.created_by
	 LEFT JOIN LATERAL (
		SELECT COUNT(*) AS registration_count, SUM(num_attendees) AS total_attendees
		FROM event_registrations WHERE event_id = e.id
	 ) r ON TRUE`
}

func scanEvent(row pgx.Row, e *model.Event) error {
	return row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.EventDate,
		&e.EventEndDate,
		&e.Venue,
		&e.District,
		&e.Panchayat,
		&e.Ward,
		&e.Category,
		&e.MaxParticipants,
		&e.ContactPhone,
		&e.ContactEmail,
		&e.CreatedBy,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.CreatorName,
		&e.RegistrationCount,
		&e.TotalAttendees,
	)
}

func CreateEvent(ctx context.Context, db database.DB, e *model.Event) (*model.Event, error) {
	category := e.Category
	if category == "" {
		category = model.EventGeneral
	}
	row := db.QueryRow(ctx,
		`WITH inserted AS (
			INSERT INTO events (title, description, event_date, event_end_date, venue, district,
				panchayat, ward, category, max_participants, contact_phone, contact_email, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING *
		)
		`+eventSelect("inserted"),
		e.Title,
		e.Description,
		e.EventDate,
		e.EventEndDate,
		e.Venue,
		e.District,
		e.Panchayat,
		e.Ward,
		category,
		e.MaxParticipants,
		e.ContactPhone,
		e.ContactEmail,
		e.CreatedBy,
	)
	created := &model.Event{}
	if err := scanEvent(row, created); err != nil {
		if database.IsCheckViolation(err, eventDatesConstraint) {
			return nil, fmt.Errorf("CreateEvent: %w", ErrInvalidDates)
		}
		return nil, fmt.Errorf("CreateEvent: %w", err)
	}
	return created, nil
}

func GetEventByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.Event, error) {
	row := db.QueryRow(ctx, eventSelect("events")+` WHERE e.id = $1`, id)
	e := &model.Event{}
	if err := scanEvent(row, e); err != nil {
		return nil, wrap("GetEventByID", err)
	}
	return e, nil
}

const eventFilterWhere = `
	 WHERE e.is_active
	   AND ($1::text IS NULL OR e.district = $1)
	   AND ($2::text IS NULL OR e.panchayat = $2)`

// ListEvents 只列出啟用中的活動，依活動日期由近到遠
func ListEvents(ctx context.Context, db database.DB, f model.EventFilter) ([]model.Event, int, error) {
	total, err := count(ctx, db, "ListEvents",
		`SELECT COUNT(*) FROM events e`+eventFilterWhere,
		f.District, f.Panchayat,
	)
	if err != nil {
		return nil, 0, err
	}

	rows, err := db.Query(ctx,
		eventSelect("events")+eventFilterWhere+`
		 ORDER BY e.event_date ASC
		 LIMIT $3 OFFSET $4`,
		f.District, f.Panchayat,
		f.Page.Limit, f.Page.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListEvents: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, 0, fmt.Errorf("ListEvents: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListEvents: %w", err)
	}
	return events, total, nil
}

func UpdateEvent(ctx context.Context, db database.DB, id uuid.UUID, upd model.EventUpdate) (*model.Event, error) {
	row := db.QueryRow(ctx,
		`WITH updated AS (
			UPDATE events
			SET title = COALESCE($2, title),
			    description = COALESCE($3, description),
			    event_date = COALESCE($4, event_date),
			    event_end_date = CASE WHEN $15 THEN NULL ELSE COALESCE($5, event_end_date) END,
			    venue = COALESCE($6, venue),
			    district = COALESCE($7, district),
			    panchayat = COALESCE($8, panchayat),
			    ward = CASE WHEN $16 THEN NULL ELSE COALESCE($9, ward) END,
			    category = COALESCE($10, category),
			    max_participants = CASE WHEN $17 THEN NULL ELSE COALESCE($11, max_participants) END,
			    contact_phone = CASE WHEN $18 THEN NULL ELSE COALESCE($12, contact_phone) END,
			    contact_email = CASE WHEN $19 THEN NULL ELSE COALESCE($13, contact_email) END,
			    is_active = COALESCE($14, is_active)
			WHERE id = $1
			RETURNING *
		)
		`+eventSelect("updated"),
		id,
		upd.Title,
		upd.Description,
		upd.EventDate,
		upd.EventEndDate,
		upd.Venue,
		upd.District,
		upd.Panchayat,
		upd.Ward,
		upd.Category,
		upd.MaxParticipants,
		upd.ContactPhone,
		upd.ContactEmail,
		upd.IsActive,
		upd.ClearEndDate,
		upd.ClearWard,
		upd.ClearMaxParticipants,
		upd.ClearContactPhone,
		upd.ClearContactEmail,
	)
	e := &model.Event{}
	if err := scanEvent(row, e); err != nil {
		if database.IsCheckViolation(err, eventDatesConstraint) {
			return nil, fmt.Errorf("UpdateEvent: %w", ErrInvalidDates)
		}
		return nil, wrap("UpdateEvent", err)
	}
	return e, nil
}

func DeleteEvent(ctx context.Context, db database.DB, id uuid.UUID) error {
	return execAffecting(ctx, db, "DeleteEvent",
		`DELETE FROM events WHERE id = $1`,
		id,
	)
}
