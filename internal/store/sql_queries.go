package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"geonotes/models"
)

// psql is the shared squirrel builder configured for PostgreSQL $n
// placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`
)

// noteColumns is the canonical column order used by every note query and
// matched by scanNote.
var noteColumns = []string{"id", "owner_id", "text", "image_ref", "audio_ref", "latitude", "longitude", "created_at", "updated_at"}

const noteReturning = "RETURNING id, owner_id, text, image_ref, audio_ref, latitude, longitude, created_at, updated_at"

const markerReturning = "RETURNING id, latitude, longitude, note, image_ref, audio_ref, created_at"

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	var lat, lng any
	if note.Location != nil {
		lat, lng = note.Location.Latitude, note.Location.Longitude
	}

	return psql.Insert("notes").
		Columns("id", "owner_id", "text", "image_ref", "audio_ref", "latitude", "longitude").
		Values(note.ID, note.OwnerID, note.Text, note.ImageRef, note.AudioRef, lat, lng).
		Suffix(noteReturning).
		ToSql()
}

// buildUpdateNoteQuery assembles a partial UPDATE from the non-nil fields of
// update. updated_at is always touched so subscribers observe the write.
func buildUpdateNoteQuery(ownerID int64, id string, update models.NoteUpdate) (string, []any, error) {
	b := psql.Update("notes").Set("updated_at", sq.Expr("NOW()"))

	if update.Text != nil {
		b = b.Set("text", *update.Text)
	}
	if update.ImageRef != nil {
		b = b.Set("image_ref", *update.ImageRef)
	}
	if update.AudioRef != nil {
		b = b.Set("audio_ref", *update.AudioRef)
	}
	if update.Location != nil {
		b = b.Set("latitude", update.Location.Latitude).
			Set("longitude", update.Location.Longitude)
	}

	return b.Where(sq.Eq{"id": id, "owner_id": ownerID}).
		Suffix(noteReturning).
		ToSql()
}

func buildSelectNotesQuery(ownerID int64) (string, []any, error) {
	return psql.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

func buildDeleteNoteQuery(ownerID int64, id string) (string, []any, error) {
	return psql.Delete("notes").
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
}

func buildInsertMarkerQuery(marker models.Marker) (string, []any, error) {
	return psql.Insert("markers").
		Columns("id", "latitude", "longitude", "note", "image_ref", "audio_ref").
		Values(marker.ID, marker.Latitude, marker.Longitude, marker.Note, marker.ImageRef, marker.AudioRef).
		Suffix(markerReturning).
		ToSql()
}

func buildSelectMarkersQuery() (string, []any, error) {
	return psql.Select("id", "latitude", "longitude", "note", "image_ref", "audio_ref", "created_at").
		From("markers").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote reads one row in noteColumns order, folding the nullable
// latitude/longitude pair back into an optional GeoPoint.
func scanNote(s rowScanner) (models.Note, error) {
	var (
		note     models.Note
		imageRef sql.NullString
		audioRef sql.NullString
		lat      sql.NullFloat64
		lng      sql.NullFloat64
	)

	err := s.Scan(
		&note.ID,
		&note.OwnerID,
		&note.Text,
		&imageRef,
		&audioRef,
		&lat,
		&lng,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	if imageRef.Valid {
		note.ImageRef = &imageRef.String
	}
	if audioRef.Valid {
		note.AudioRef = &audioRef.String
	}
	if lat.Valid && lng.Valid {
		note.Location = &models.GeoPoint{Latitude: lat.Float64, Longitude: lng.Float64}
	}

	return note, nil
}

// scanMarker reads one marker row in the markerReturning column order.
func scanMarker(s rowScanner) (models.Marker, error) {
	var (
		marker   models.Marker
		imageRef sql.NullString
		audioRef sql.NullString
	)

	err := s.Scan(
		&marker.ID,
		&marker.Latitude,
		&marker.Longitude,
		&marker.Note,
		&imageRef,
		&audioRef,
		&marker.CreatedAt,
	)
	if err != nil {
		return models.Marker{}, err
	}

	if imageRef.Valid {
		marker.ImageRef = &imageRef.String
	}
	if audioRef.Valid {
		marker.AudioRef = &audioRef.String
	}

	return marker, nil
}
