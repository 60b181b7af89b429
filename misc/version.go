// Package misc provides build identification helpers shared across the program.
package misc

import "runtime/debug"

const appName = "rst2html5"

// GetAppName returns program name to be used in logs and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version embedded by the module system.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision recorded at build time, if any.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
