package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wetshaving/brushmatch/pkg/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage brush catalogs",
	Long:  "Commands for listing and validating catalog sections",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog sections",
	Long:  "Display every catalog section with its entry and pattern counts",
	RunE:  runCatalogList,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalog",
	Long:  "Load and compile a catalog, reporting the first problem found",
	RunE:  runCatalogValidate,
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

func loadCatalog() (*catalog.Catalog, error) {
	if catalogDir != "" {
		return catalog.LoadDir(catalogDir)
	}
	return catalog.NewLoader().Load()
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	compiled, err := catalog.Compile(cat)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "SECTION\tENTRIES\tPATTERNS\n")
	for _, section := range catalog.Sections {
		fmt.Fprintf(w, "%s\t%d\t%d\n",
			section, len(cat.Section(section)), compiled.PatternCount(section))
	}
	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("catalog invalid: %w", err)
	}
	if _, err := catalog.Compile(cat); err != nil {
		return fmt.Errorf("catalog invalid: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d entries\n", cat.EntryCount())
	return nil
}
