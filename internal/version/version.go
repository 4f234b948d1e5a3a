package version

// Set with -ldflags "-X github.com/bnema/course-tutor/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
)

func String() string {
	if Commit == "" || Commit == "none" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
