package store

import (
	"context"
	"fmt"

	"github.com/vishnupriya759285/velookara/internal/database"
	"github.com/vishnupriya759285/velookara/internal/model"

	"github.com/google/uuid"
)

const registrationPhoneConstraint = "event_registrations_event_phone_key"

// RegisterForEvent 在單一交易內完成報名。
// 以 SELECT ... FOR UPDATE 鎖住活動列，同一活動的報名依序執行，人數上限不會被超過。
// 檢查順序: 活動存在 -> 啟用中 -> 電話未重複 -> 人數未滿。
func RegisterForEvent(ctx context.Context, db database.DB, r *model.Registration) (*model.Registration, error) {
	numAttendees := r.NumAttendees
	if numAttendees == 0 {
		numAttendees = 1
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("RegisterForEvent: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		active          bool
		maxParticipants *int
	)
	if err := tx.QueryRow(ctx,
		`SELECT is_active, max_participants FROM events WHERE id = $1 FOR UPDATE`,
		r.EventID,
	).Scan(&active, &maxParticipants); err != nil {
		return nil, wrap("RegisterForEvent", err)
	}
	if !active {
		return nil, fmt.Errorf("RegisterForEvent: %w", ErrEventInactive)
	}

	var duplicate bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM event_registrations WHERE event_id = $1 AND phone = $2)`,
		r.EventID,
		r.Phone,
	).Scan(&duplicate); err != nil {
		return nil, fmt.Errorf("RegisterForEvent: %w", err)
	}
	if duplicate {
		return nil, fmt.Errorf("RegisterForEvent: %w", ErrDuplicatePhone)
	}

	if maxParticipants != nil {
		current, err := count(ctx, tx, "RegisterForEvent",
			`SELECT COALESCE(SUM(num_attendees), 0) FROM event_registrations WHERE event_id = $1`,
			r.EventID,
		)
		if err != nil {
			return nil, err
		}
		if current+numAttendees > *maxParticipants {
			return nil, fmt.Errorf("RegisterForEvent: %w", ErrEventFull)
		}
	}

	created := &model.Registration{}
	if err := tx.QueryRow(ctx,
		`INSERT INTO event_registrations (event_id, name, phone, email, ward, num_attendees)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, event_id, name, phone, email, ward, num_attendees, registered_at`,
		r.EventID,
		r.Name,
		r.Phone,
		r.Email,
		r.Ward,
		numAttendees,
	).Scan(
		&created.ID,
		&created.EventID,
		&created.Name,
		&created.Phone,
		&created.Email,
		&created.Ward,
		&created.NumAttendees,
		&created.RegisteredAt,
	); err != nil {
		if database.IsUniqueViolation(err, registrationPhoneConstraint) {
			return nil, fmt.Errorf("RegisterForEvent: %w", ErrDuplicatePhone)
		}
		return nil, fmt.Errorf("RegisterForEvent: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		if database.IsUniqueViolation(err, registrationPhoneConstraint) {
			return nil, fmt.Errorf("RegisterForEvent: %w", ErrDuplicatePhone)
		}
		return nil, fmt.Errorf("RegisterForEvent: commit: %w", err)
	}
	return created, nil
}

// ListRegistrations 回傳報名清單與統計，依報名時間由新到舊
func ListRegistrations(ctx context.Context, db database.DB, eventID uuid.UUID) ([]model.Registration, model.RegistrationStats, error) {
	var stats model.RegistrationStats
	rows, err := db.Query(ctx,
		`SELECT id, event_id, name, phone, email, ward, num_attendees, registered_at
		 FROM event_registrations
		 WHERE event_id = $1
		 ORDER BY registered_at DESC`,
		eventID,
	)
	if err != nil {
		return nil, stats, fmt.Errorf("ListRegistrations: %w", err)
	}
	defer rows.Close()

	regs := []model.Registration{}
	for rows.Next() {
		var r model.Registration
		if err := rows.Scan(
			&r.ID,
			&r.EventID,
			&r.Name,
			&r.Phone,
			&r.Email,
			&r.Ward,
			&r.NumAttendees,
			&r.RegisteredAt,
		); err != nil {
			return nil, stats, fmt.Errorf("ListRegistrations: %w", err)
		}
		stats.Count++
		stats.TotalAttendees += r.NumAttendees
		regs = append(regs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, stats, fmt.Errorf("ListRegistrations: %w", err)
	}
	return regs, stats, nil
}
