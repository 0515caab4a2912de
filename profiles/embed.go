package profiles

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var profilesFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load reads a profile file, preferring an on-disk copy next to the binary
// so edited profiles win over the embedded defaults.
func Load(name string) ([]byte, error) {
	clean := cleanProfilePath(name)
	if data, err := os.ReadFile(filepath.Join("profiles", clean)); err == nil {
		return data, nil
	}
	return profilesFS.ReadFile(clean)
}

// LoadScript reads a condition script, preferring an on-disk copy.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("profiles", clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

// Default loads and parses the embedded default profile.
func Default() (*Profile, error) {
	data, err := Load("default.yaml")
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func cleanProfilePath(path string) string {
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "profiles/")
}

func cleanScriptPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "profiles/")
	if !strings.HasPrefix(s, "scripts/") {
		s = "scripts/" + s
	}
	return s
}
