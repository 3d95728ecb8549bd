package repositories

import (
	"database/sql"

	intconfig "haulhub/internal/config"
	"haulhub/internal/domain"
	"haulhub/internal/domain/models"
)

type DocumentRepository struct {
	DB *sql.DB
}

func (r DocumentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DocumentRepository) Insert(d models.Document, content []byte) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trip_documents (trip_id, file_name, content_type, size_bytes, uploaded_by, uploaded_at, content)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.TripID, d.FileName, d.ContentType, d.SizeBytes, d.UploadedBy, d.UploadedAt, content,
	)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to store document", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// ListByTrip returns document metadata only; content stays in the DB until
// a download asks for it.
func (r DocumentRepository) ListByTrip(tripID string) ([]models.Document, error) {
	rows, err := r.db().Query(`
		SELECT id, trip_id, file_name, content_type, size_bytes, uploaded_by, uploaded_at
		FROM trip_documents
		WHERE trip_id=?
		ORDER BY uploaded_at DESC, id DESC`, tripID)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list documents", Err: err}
	}
	defer rows.Close()

	out := []models.Document{}
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.TripID, &d.FileName, &d.ContentType, &d.SizeBytes, &d.UploadedBy, &d.UploadedAt); err != nil {
			return out, domain.InternalError{Msg: "failed to scan document", Err: err}
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DocumentRepository) GetContent(id int64) (models.Document, []byte, error) {
	var d models.Document
	var content []byte
	err := r.db().QueryRow(`
		SELECT id, trip_id, file_name, content_type, size_bytes, uploaded_by, uploaded_at, content
		FROM trip_documents WHERE id=?`, id).
		Scan(&d.ID, &d.TripID, &d.FileName, &d.ContentType, &d.SizeBytes, &d.UploadedBy, &d.UploadedAt, &content)
	if err == sql.ErrNoRows {
		return d, nil, domain.NotFoundError{Resource: "document"}
	}
	if err != nil {
		return d, nil, domain.InternalError{Msg: "failed to load document", Err: err}
	}
	return d, content, nil
}
