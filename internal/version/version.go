package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/promptline/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/promptline/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/promptline/internal/version.Date={{.Date}}
)
