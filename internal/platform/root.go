package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProfileFile is the name of the per-project connection profile.
const ProfileFile = ".chaise.yaml"

// Profile holds connection defaults read from ProfileFile.
// Flags and environment variables take precedence over it.
type Profile struct {
	URL      string `yaml:"url"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Timeout  string `yaml:"timeout"` // time.ParseDuration syntax
}

// FindRoot recursively looks upwards for a directory holding ProfileFile.
// If found, returns the absolute path to that directory.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ProfileFile) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("root not found")
}

// LoadProfile reads the nearest ProfileFile above startDir.
// A missing profile yields an empty Profile and no error.
func LoadProfile(startDir string) (Profile, error) {
	root, err := FindRoot(startDir)
	if err != nil {
		return Profile{}, nil
	}

	data, err := os.ReadFile(filepath.Join(root, ProfileFile))
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %s: %w", filepath.Join(root, ProfileFile), err)
	}
	return p, nil
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}
