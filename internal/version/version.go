package version

// Set at build time with -ldflags "-X ...".
var (
	Version = "Development"
	Commit  = "unknown"
)

func GetVersion() string {
	return Version
}

func GetCommit() string {
	return Commit
}
