package schema

// LogEntryTable represents the append-only 'log_entry' audit table
type LogEntryTable struct {
	Table     string
	ID        string
	UserToken string
	CreatedAt string
	Action    string
}

// LogEntry is the schema definition for the log_entry table
var LogEntry = LogEntryTable{
	Table:     "log_entry",
	ID:        "id",
	UserToken: "user_token",
	CreatedAt: "created_at",
	Action:    "action",
}
