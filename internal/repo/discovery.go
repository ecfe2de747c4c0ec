package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dyluth/warren/internal/pubspec"
)

// Package describes a single package discovered in the repository.
type Package struct {
	Name     string           // Package name from the manifest
	Path     string           // Path to the package directory
	Manifest *pubspec.Pubspec // Parsed pubspec.yaml

	// Federation classification, derived from repository layout.
	// A package directly under packages/ is unfederated. A package inside a
	// group directory (packages/<group>/<package>) is federated, and is the
	// app-facing member when its directory is named after the group.
	Federated bool
	AppFacing bool
}

// ReadmePath returns the expected location of the package README
func (p *Package) ReadmePath() string {
	return filepath.Join(p.Path, "README.md")
}

// Discover finds all packages under <root>/packages.
//
// Every directory containing a pubspec.yaml is a package. A directory
// without one is treated as a federation group and its immediate
// subdirectories are inspected instead. Results are sorted by path so
// that check output is deterministic across runs.
func Discover(root string) ([]*Package, error) {
	packagesDir := filepath.Join(root, "packages")
	entries, err := os.ReadDir(packagesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read packages directory: %w", err)
	}

	var packages []*Package
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(packagesDir, entry.Name())

		if hasManifest(dir) {
			pkg, err := loadPackage(dir, false, false)
			if err != nil {
				return nil, err
			}
			packages = append(packages, pkg)
			continue
		}

		// Federation group: each subdirectory with a manifest is a member
		members, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read group directory %s: %w", dir, err)
		}
		for _, member := range members {
			if !member.IsDir() {
				continue
			}
			memberDir := filepath.Join(dir, member.Name())
			if !hasManifest(memberDir) {
				continue
			}
			pkg, err := loadPackage(memberDir, true, member.Name() == entry.Name())
			if err != nil {
				return nil, err
			}
			packages = append(packages, pkg)
		}
	}

	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Path < packages[j].Path
	})

	return packages, nil
}

func loadPackage(dir string, federated, appFacing bool) (*Package, error) {
	manifest, err := pubspec.Load(filepath.Join(dir, pubspec.FileName))
	if err != nil {
		return nil, fmt.Errorf("package at %s: %w", dir, err)
	}

	return &Package{
		Name:      manifest.Name,
		Path:      dir,
		Manifest:  manifest,
		Federated: federated,
		AppFacing: appFacing,
	}, nil
}

func hasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, pubspec.FileName))
	return err == nil && !info.IsDir()
}
