package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

// Linker-injected build metadata: -ldflags "-X .../handler.GitCommit=..."
var (
	BuildTime = "unknown"
	GitCommit = ""
)

// VersionInfo describes the running build
type VersionInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
	GoVersion   string `json:"go_version"`
	GitCommit   string `json:"git_commit,omitempty"`
	BuildTime   string `json:"build_time,omitempty"`
}

// NewVersionInfo fills the commit from the linker flag, falling back to
// the VCS revision stamped by the go tool.
func NewVersionInfo(version, environment string) VersionInfo {
	info := VersionInfo{
		Version:     version,
		Environment: environment,
		GoVersion:   runtime.Version(),
		GitCommit:   GitCommit,
		BuildTime:   BuildTime,
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.GitCommit == "" {
		info.GitCommit = vcsRevision()
	}
	return info
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// HandleVersion reports the deployed build
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(info VersionInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}
