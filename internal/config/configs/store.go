package configs

import "strings"

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects the persistence backend. "postgres" (default) uses the
// Psql section; "memory" keeps everything in process and is meant for
// local runs.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// DriverName returns the normalised driver name. Unknown values fall back
// to postgres.
func (c Store) DriverName() string {
	if strings.EqualFold(strings.TrimSpace(c.Driver), StoreDriverMemory) {
		return StoreDriverMemory
	}
	return StoreDriverPostgres
}
