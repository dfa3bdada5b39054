package domain

const (
	// ProbeKeySuffix is appended to the configured key prefix to form the
	// key used by the live write/read probe.
	ProbeKeySuffix = "healthcheck:probe"

	// Check names, in the fixed order the suite runs them.
	CheckConnection  = "connection"
	CheckSettings    = "settings"
	CheckMemory      = "memory"
	CheckKeyspace    = "keyspace"
	CheckStats       = "stats"
	CheckEviction    = "eviction"
	CheckPersistence = "persistence"
	CheckClients     = "clients"
)
