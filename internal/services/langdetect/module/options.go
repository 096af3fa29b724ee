package module

import "langdetect/internal/platform/config"

// Options holds configuration settings for the langdetect module
type Options struct {
	// MaxQueryBytes caps the size of a query before segmentation; 0 means
	// config default, negative (via override) disables the cap
	MaxQueryBytes int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	lc := cfg.Prefix("CORE_LANGDETECT_")
	return Options{
		MaxQueryBytes: lc.MayInt("MAX_QUERY_BYTES", 1<<20),
	}
}
