package commands

import (
	"encoding/json"
	"fmt"

	"github.com/dyluth/warren/internal/printer"
	"github.com/dyluth/warren/internal/repo"
	"github.com/spf13/cobra"
)

var (
	listRepo string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all packages in the repository",
	Long: `List all packages discovered under the repository's packages/ directory.

For each package, displays:
  • Package name
  • Kind (plugin or package)
  • Federation role (app-facing, platform, or -)
  • Path

Use --json for machine-readable output.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listRepo, "repo", "r", ".", "Path to the repository root")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// packageInfo is the list entry for one discovered package
type packageInfo struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Role      string `json:"role"`
	Path      string `json:"path"`
	Federated bool   `json:"federated"`
}

func runList(cmd *cobra.Command, args []string) error {
	packages, err := repo.Discover(listRepo)
	if err != nil {
		return printer.ErrorWithContext(
			"failed to discover packages",
			"Warren expects a repository with a packages/ directory at its root.",
			map[string]string{"Repository": listRepo},
			[]string{"Run from the repository root, or point --repo at one."},
		)
	}

	infos := make([]packageInfo, 0, len(packages))
	for _, pkg := range packages {
		kind := "package"
		if pkg.Manifest.IsPlugin() {
			kind = "plugin"
		}

		role := "-"
		if pkg.Federated {
			if pkg.AppFacing {
				role = "app-facing"
			} else {
				role = "platform"
			}
		}

		infos = append(infos, packageInfo{
			Name:      pkg.Name,
			Kind:      kind,
			Role:      role,
			Path:      pkg.Path,
			Federated: pkg.Federated,
		})
	}

	// Output
	if len(infos) == 0 {
		if !listJSON {
			fmt.Println("No packages found.")
		} else {
			fmt.Println("[]")
		}
		return nil
	}

	if listJSON {
		outputJSON(infos)
	} else {
		outputTable(infos)
	}

	return nil
}

func outputJSON(infos []packageInfo) {
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func outputTable(infos []packageInfo) {
	// Print header
	fmt.Printf("%-30s %-8s %-12s %s\n", "PACKAGE", "KIND", "ROLE", "PATH")

	// Print rows
	for _, info := range infos {
		fmt.Printf("%-30s %-8s %-12s %s\n", info.Name, info.Kind, info.Role, info.Path)
	}
}
