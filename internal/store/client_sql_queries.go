package store

const (
	createCacheSchema = `
		CREATE TABLE IF NOT EXISTS note_cache (
			id       TEXT PRIMARY KEY,
			payload  TEXT NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS drafts (
			note_id    TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`

	clearNoteCache = `
		DELETE FROM note_cache;`

	insertCachedNote = `
		INSERT INTO note_cache (id, payload, position)
		VALUES ($1, $2, $3);`

	selectCachedNotes = `
		SELECT payload
		FROM note_cache
		ORDER BY position ASC;`

	upsertDraft = `
		INSERT INTO drafts (note_id, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (note_id) DO UPDATE SET
			payload    = excluded.payload,
			updated_at = CURRENT_TIMESTAMP;`

	selectDraft = `
		SELECT payload
		FROM drafts
		WHERE note_id = $1;`

	deleteDraft = `
		DELETE FROM drafts
		WHERE note_id = $1;`
)
