package version

import (
	"fmt"
	"runtime/debug"
)

// Version is stamped with -ldflags at release time. Module builds fall back
// to the version recorded in the build info.
var Version = "dev"

// Info is what fixsql reports for --version.
type Info struct {
	Version  string
	Revision string
	Time     string
	Modified bool
}

// Get reads version details from the running binary.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return fromBuildInfo(Version, bi)
}

func fromBuildInfo(stamped string, bi *debug.BuildInfo) Info {
	info := Info{Version: stamped}
	if bi == nil {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
			if len(info.Revision) > 12 {
				info.Revision = info.Revision[:12]
			}
		case "vcs.time":
			info.Time = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func (i Info) String() string {
	if i.Revision == "" {
		return i.Version
	}
	rev := i.Revision
	if i.Modified {
		rev += "-dirty"
	}
	if i.Time == "" {
		return fmt.Sprintf("%s (%s)", i.Version, rev)
	}
	return fmt.Sprintf("%s (%s, %s)", i.Version, rev, i.Time)
}
