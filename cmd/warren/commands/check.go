package commands

import (
	"fmt"

	"github.com/dyluth/warren/internal/printer"
	"github.com/dyluth/warren/internal/readme"
	"github.com/dyluth/warren/internal/repo"
	"github.com/spf13/cobra"
)

var (
	checkRepo            string
	checkPackages        []string
	checkRequireExcerpts bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check package READMEs against repository conventions",
	Long: `Check every package's README.md against repository conventions.

For each package, verifies:
  • README.md exists
  • Every fenced code block declares a language identifier
  • With --require-excerpts, every dart code block is preceded by a
    "<?code-excerpt ...>" directive
  • For plugins, the OS support table matches the platforms declared in
    pubspec.yaml, with canonical capitalization (Android, iOS, Linux,
    macOS, Web, Windows)

A failing package never stops the run; all packages are checked and the
command exits non-zero if any of them failed.

Examples:
  # Check every package in the current repository
  warren check

  # Check specific packages with excerpt enforcement
  warren check --require-excerpts --packages camera,video_player`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkRepo, "repo", "r", ".", "Path to the repository root")
	checkCmd.Flags().StringSliceVarP(&checkPackages, "packages", "p", nil, "Only check the named packages")
	checkCmd.Flags().BoolVar(&checkRequireExcerpts, "require-excerpts", false, "Require code-excerpt management on dart code blocks")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	packages, err := repo.Discover(checkRepo)
	if err != nil {
		return printer.ErrorWithContext(
			"failed to discover packages",
			"Warren expects a repository with a packages/ directory at its root.",
			map[string]string{"Repository": checkRepo},
			[]string{"Run from the repository root, or point --repo at one."},
		)
	}

	selected := selectPackages(packages, checkPackages)
	if len(selected) == 0 {
		return printer.Error(
			"no packages to check",
			fmt.Sprintf("No packages matched in %s.", checkRepo),
			[]string{"Check the --packages names against 'warren list'."},
		)
	}

	failed := 0
	for _, pkg := range selected {
		printer.Step("Checking %s\n", pkg.Name)

		result := readme.Validate(pkg, readme.Options{RequireExcerpts: checkRequireExcerpts})
		if result.Passed() {
			printer.Success("%s\n", pkg.Name)
			continue
		}

		failed++
		for _, reason := range result.Errors {
			printer.Failure("%s: %s\n", pkg.Name, reason)
		}
	}

	printer.Info("\n%d of %d package(s) passed README checks\n", len(selected)-failed, len(selected))
	if failed > 0 {
		return printer.Error(
			fmt.Sprintf("%d package(s) failed README checks", failed),
			"See the diagnostics above for the offending lines in each README.",
			nil,
		)
	}
	return nil
}

// selectPackages filters the discovered packages down to the requested names.
// An empty request selects everything.
func selectPackages(packages []*repo.Package, names []string) []*repo.Package {
	if len(names) == 0 {
		return packages
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var selected []*repo.Package
	for _, pkg := range packages {
		if wanted[pkg.Name] {
			selected = append(selected, pkg)
		}
	}
	return selected
}
