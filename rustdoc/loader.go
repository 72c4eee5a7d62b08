package rustdoc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LoadFile parses a rustdoc JSON document from disk.
func LoadFile(path string) (*Crate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rustdoc json: %w", err)
	}
	return Parse(data)
}

// Parse decodes a rustdoc JSON document and validates its structure.
func Parse(data []byte) (*Crate, error) {
	var crate Crate
	if err := json.Unmarshal(data, &crate); err != nil {
		return nil, fmt.Errorf("parse rustdoc json: %w", err)
	}
	if err := crate.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rustdoc json: %w", err)
	}
	return &crate, nil
}

// LoadCrate runs rustdoc over the crate at dir and parses the resulting
// JSON document. It requires a nightly toolchain since JSON output is an
// unstable rustdoc feature.
func LoadCrate(ctx context.Context, logger *slog.Logger, dir string) (*Crate, error) {
	manifest := filepath.Join(dir, "Cargo.toml")
	name, err := crateNameFromManifest(manifest)
	if err != nil {
		return nil, err
	}

	logger.Info("generating rustdoc json", "crate", name, "dir", dir)

	cmd := exec.CommandContext(ctx, "cargo", "+nightly", "rustdoc",
		"--manifest-path", manifest,
		"--", "--output-format", "json", "-Z", "unstable-options")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("cargo rustdoc: %w: %s", err, strings.TrimSpace(string(out)))
	}

	// Cargo writes doc output next to the manifest's target directory,
	// with the JSON file named after the crate with dashes normalized.
	jsonPath := filepath.Join(dir, "target", "doc", strings.ReplaceAll(name, "-", "_")+".json")
	crate, err := LoadFile(jsonPath)
	if err != nil {
		return nil, err
	}

	if crate.CrateVersion == "" {
		if version, err := crateVersionFromManifest(manifest); err == nil {
			crate.CrateVersion = version
		}
	}
	return crate, nil
}

// crateNameFromManifest scans Cargo.toml for the package name. A full
// TOML parser is unnecessary for the two keys read here.
func crateNameFromManifest(path string) (string, error) {
	name, err := manifestPackageKey(path, "name")
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("no package name in %s", path)
	}
	return name, nil
}

// crateVersionFromManifest scans Cargo.toml for the package version.
func crateVersionFromManifest(path string) (string, error) {
	version, err := manifestPackageKey(path, "version")
	if err != nil {
		return "", err
	}
	if version == "" {
		return "", fmt.Errorf("no package version in %s", path)
	}
	return version, nil
}

func manifestPackageKey(path, key string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}

	inPackage := false
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") {
			inPackage = line == "[package]"
			continue
		}
		if !inPackage {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(k) != key {
			continue
		}
		return strings.Trim(strings.TrimSpace(v), `"`), nil
	}
	return "", nil
}
