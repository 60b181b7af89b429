package convert

import (
	"path/filepath"
	"strings"

	"rst2html5/config"
	"rst2html5/state"
)

// buildOutputPath returns constructed output file path/name. It preserves the
// source-relative directory structure unless flat output was requested, and
// cleans up the base name before attaching the output extension.
func buildOutputPath(src, dst string, env *state.LocalEnv) string {
	return filepath.Join(determineOutputDir(src, dst, env), buildOutputFileName(src))
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func buildOutputFileName(src string) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return config.CleanFileName(baseName) + ".html"
}
