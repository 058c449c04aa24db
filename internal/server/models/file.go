package models

// SavedFile is the registry record linking an uploaded object's public URL
// to its owning user. The bytes themselves live in object storage.
type SavedFile struct {
	ID       int64  `db:"id" json:"id"`
	FileLink string `db:"file_link" json:"fileLink"`
	UserID   int64  `db:"user_id" json:"userId"`
}
