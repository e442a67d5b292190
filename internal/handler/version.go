package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"sync"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version        string `json:"version"`
	GoVersion      string `json:"go_version"`
	BuildTime      string `json:"build_time,omitempty"`
	GitCommit      string `json:"git_commit,omitempty"`
	CatalogVersion string `json:"catalog_version,omitempty"`
}

// Set with -ldflags "-X github.com/osse101/JellyBot_Go/internal/handler.Version=..."
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

var buildInfo = sync.OnceValue(func() VersionInfo {
	info := VersionInfo{
		Version:   firstNonEmpty(Version, os.Getenv("VERSION"), "dev"),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	// go build stamps VCS data into binaries built from a checkout.
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.GitCommit = firstNonEmpty(info.GitCommit, s.Value)
			case "vcs.time":
				info.BuildTime = firstNonEmpty(info.BuildTime, s.Value)
			}
		}
	}
	return info
})

// HandleVersion reports the running build and the loaded item catalog version.
func HandleVersion(catalogVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		info := buildInfo()
		info.CatalogVersion = catalogVersion
		respondJSON(w, http.StatusOK, info)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
