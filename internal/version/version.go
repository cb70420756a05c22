package version

// Version is set at build time with -ldflags "-X github.com/luminabrain/lb/internal/version.Version=...".
var Version = "dev"
