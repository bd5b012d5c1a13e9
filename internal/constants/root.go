package constants

const (
	AppName            = "duolog"
	Version            = "v0.2.0"
	DefaultConfigPath  = "~/.config/duolog/duolog.db"
	DefaultKeyringUser = "mirror-connection"

	// MirrorDSNEnv is the environment variable checked for the remote
	// mirror connection string before falling back to the OS keyring.
	MirrorDSNEnv = "DUOLOG_MIRROR_DSN"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat identifies a hall-of-fame month (YYYY-MM)
	MonthFormat = "2006-01"

	// StreakKey is the fixed identifier of the single shared streak record
	StreakKey = "main-streak"

	// StreakHistoryLimit caps the retained streak history entries
	StreakHistoryLimit = 30

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "duolog-"
	BackupFileSuffix = ".db"
)
