package platform

import (
	"os"
	"runtime"
)

// Platform represents the operating system platform
type Platform string

const (
	MacOS   Platform = "darwin"
	Linux   Platform = "linux"
	Windows Platform = "windows"
	Unknown Platform = "unknown"
)

// Info contains platform-specific information and paths
type Info struct {
	OS           Platform
	TempEnvVar   string // environment variable consulted for the temp directory
	TempFallback string // used when TempEnvVar is unset or empty
	TempDir      string // resolved temp directory
}

// Detect returns the current platform
func Detect() Platform {
	return detect(runtime.GOOS)
}

func detect(goos string) Platform {
	switch goos {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	case "windows":
		return Windows
	default:
		return Unknown
	}
}

// TempEnvVar returns the environment variable that names the temp directory on p.
func TempEnvVar(p Platform) string {
	if p == Windows {
		return "TEMP"
	}
	return "TMPDIR"
}

// TempFallback returns the hardcoded temp directory used when the
// environment does not name one.
func TempFallback(p Platform) string {
	if p == Windows {
		return `C:\Windows\Temp`
	}
	return "/tmp"
}

// ResolveTempDir performs a single environment lookup for the temp directory
// and falls back to the platform default when the variable is unset or empty.
func ResolveTempDir(lookup func(string) (string, bool)) string {
	return resolveTempDir(Detect(), lookup)
}

func resolveTempDir(p Platform, lookup func(string) (string, bool)) string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if dir, ok := lookup(TempEnvVar(p)); ok && dir != "" {
		return dir
	}
	return TempFallback(p)
}

// GetInfo returns platform-specific information. Platforms other than
// Windows resolve the temp directory the unix way.
func GetInfo() *Info {
	p := Detect()
	return &Info{
		OS:           p,
		TempEnvVar:   TempEnvVar(p),
		TempFallback: TempFallback(p),
		TempDir:      resolveTempDir(p, os.LookupEnv),
	}
}
