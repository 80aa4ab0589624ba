// Package version reports build metadata for the apistub binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// Branch is the git branch, set via ldflags.
	Branch string
	// BuildUser is the user who built the binary, set via ldflags.
	BuildUser string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string
)

// Info is a snapshot of build metadata.
type Info struct {
	Version   string `json:"version"   yaml:"version"`
	Revision  string `json:"revision"  yaml:"revision"`
	Branch    string `json:"branch"    yaml:"branch"`
	BuildUser string `json:"buildUser" yaml:"buildUser"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform"  yaml:"platform"`
}

// Get returns the build metadata of the running binary. Values not set via
// ldflags fall back to the module build info where available.
func Get() Info {
	info := Info{
		Version:   Version,
		Branch:    Branch,
		BuildUser: BuildUser,
		BuildDate: BuildDate,
		Revision:  "unknown",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info.withDefaults()
	}

	if info.Version == "" && bi.Main.Version != "" {
		info.Version = bi.Main.Version
	}

	info.Revision = revision(bi.Settings)

	return info.withDefaults()
}

// String renders the metadata as a single line, e.g.
// "apistub v1.2.0 (rev abc123, go1.25.0 linux/amd64)".
func (i Info) String() string {
	return fmt.Sprintf("apistub %s (rev %s, %s %s)", i.Version, i.Revision, i.GoVersion, i.Platform)
}

func (i Info) withDefaults() Info {
	if i.Version == "" {
		i.Version = "(devel)"
	}

	return i
}

func revision(settings []debug.BuildSetting) string {
	rev := "unknown"
	modified := false

	for _, v := range settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
