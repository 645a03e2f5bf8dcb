package sqlite

import (
	"context"
	"database/sql"

	"github.com/lodgeworks/gatehouse/internal/intake/domain"
)

type submissionsRepo struct {
	db *sql.DB
}

func (r *submissionsRepo) Create(ctx context.Context, f domain.FormSubmission) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO form_submissions
			(id, email, full_name, phone, move_in_date, notes, client_ip, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.Email, f.FullName, f.Phone, f.MoveInDate, f.Notes, f.ClientIP,
		formatTime(f.SubmittedAt),
	)
	return err
}

func (r *submissionsRepo) GetByID(ctx context.Context, id string) (domain.FormSubmission, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, full_name, phone, move_in_date, notes, client_ip, submitted_at
		FROM form_submissions WHERE id = ?`, id)

	var (
		f           domain.FormSubmission
		submittedAt string
	)
	err := row.Scan(&f.ID, &f.Email, &f.FullName, &f.Phone,
		&f.MoveInDate, &f.Notes, &f.ClientIP, &submittedAt)
	if err != nil {
		return domain.FormSubmission{}, mapNotFound(err)
	}

	if f.SubmittedAt, err = parseTime(submittedAt); err != nil {
		return domain.FormSubmission{}, err
	}
	return f, nil
}
