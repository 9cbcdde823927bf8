package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/organize-rs/organize-sub000/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/organize-rs/organize-sub000/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/organize-rs/organize-sub000/internal/version.Date={{.Date}}
)
