package gndex

var (
	// Version of gndex. Datasets are accepted only if their major.minor
	// version matches this one.
	Version = "v0.1.0"

	// Build timestamp, set by the linker.
	Build = "n/a"
)
