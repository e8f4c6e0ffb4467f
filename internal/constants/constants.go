package constants

import "time"

const (
	SummaryTTLDefault  = 30 * time.Minute
	ItemDataCacheTTL   = 1 * time.Hour
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	PresetIDLength  = 21
	DefaultPageTake = 20
	MaxPageTake     = 50
)
