package engine

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vconcat/cli/logger"
)

// concatPackage is both the npm package and the binary it installs.
const concatPackage = "ffmpeg-concat"

// detectRunner returns the command and leading args used to launch
// ffmpeg-concat. A global install wins, then the project's package manager,
// then whichever runner is on PATH.
func detectRunner(override string) (string, []string) {
	if fields := strings.Fields(override); len(fields) > 0 {
		return fields[0], fields[1:]
	}

	checkCmd := func(cmd string) bool {
		_, err := exec.LookPath(cmd)
		return err == nil
	}

	if checkCmd(concatPackage) {
		return concatPackage, nil
	}

	if content, err := os.ReadFile(filepath.Join(".", "package.json")); err == nil {
		if pm := detectPackageManager(string(content)); pm != "" && checkCmd(pm) {
			logger.Debug("runner from package.json", "packageManager", pm)
			return runnerFor(pm)
		}
	}

	lockfiles := []struct {
		file string
		pm   string
	}{
		{"bun.lock", "bun"},
		{"bun.lockb", "bun"},
		{"pnpm-lock.yaml", "pnpm"},
		{"yarn.lock", "yarn"},
		{"package-lock.json", "npm"},
	}
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(".", lf.file)); err == nil {
			cmd, args := runnerFor(lf.pm)
			if checkCmd(cmd) {
				logger.Debug("runner from lockfile", "lockfile", lf.file)
				return cmd, args
			}
		}
	}

	for _, pm := range []string{"bun", "pnpm", "yarn", "npm"} {
		cmd, args := runnerFor(pm)
		if checkCmd(cmd) {
			return cmd, args
		}
	}

	return "npx", nil
}

func runnerFor(pm string) (string, []string) {
	switch pm {
	case "bun":
		return "bunx", nil
	case "pnpm":
		return "pnpm", []string{"exec"}
	case "yarn":
		return "yarn", nil
	}
	return "npx", nil
}

func detectPackageManager(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, `"packageManager"`) {
			continue
		}
		for _, pm := range []string{"bun", "pnpm", "yarn", "npm"} {
			if strings.Contains(line, `"`+pm+`@`) {
				return pm
			}
		}
	}
	return ""
}
