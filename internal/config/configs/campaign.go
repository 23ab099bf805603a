package configs

// Campaign holds defaults for campaign listings and maintenance.
type Campaign struct {
	// RetentionDays is used by cleanup when the caller gives no window.
	RetentionDays int `env:"RETENTION_DAYS" envDefault:"90"`
	// DefaultPageSize applies when a listing asks for no page size.
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"20"`
	// MaxPageSize caps requested page sizes.
	MaxPageSize int `env:"MAX_PAGE_SIZE" envDefault:"100"`
}
