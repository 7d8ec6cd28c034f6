package mirror

// Config holds configuration for mirror creation.
type Config struct {
	// Type is the mirror backend type: "sqlite", "redis" or "memory"
	Type string

	// Path is the SQLite database file path (only for sqlite type)
	Path string

	// RedisURL is the Redis connection URL (only for redis type)
	RedisURL string

	// Prefix is the key prefix for Redis (only for redis type)
	Prefix string
}

// DefaultConfig returns the default mirror configuration.
func DefaultConfig() Config {
	return Config{
		Type: "sqlite",
		Path: "./data/mirror.db",
	}
}

// New creates a mirror store based on the provided configuration.
func New(cfg Config) (Store, error) {
	if cfg.Type == "memory" {
		return NewMemoryStore(), nil
	}
	if cfg.Type == "redis" && cfg.RedisURL != "" {
		opts := DefaultRedisOptions()
		opts.URL = cfg.RedisURL
		if cfg.Prefix != "" {
			opts.Prefix = cfg.Prefix
		}
		return NewRedisStore(opts)
	}

	path := cfg.Path
	if path == "" {
		path = DefaultConfig().Path
	}
	return OpenSQLite(path)
}
