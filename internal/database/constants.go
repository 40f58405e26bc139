package database

// Error messages for save-database setup.
const (
	ErrMsgFailedToRunMigrations = "failed to run migrations"
)

// Log messages.
const (
	LogMsgMigrationsApplied       = "Database migrations applied"
	LogMsgConnectedToSaveDatabase = "Connected to the save database"
)
