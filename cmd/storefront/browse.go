package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/storefront/catalog-service/app/catalog"
	"github.com/storefront/catalog-service/models"
)

var (
	browseCategory   string
	browseSearch     string
	browseSort       string
	browseCategories bool
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Print the products matching a category, search text and sort order",
	Long: `Loads the catalog from the configured source and prints the visible products.

Examples:
  storefront browse --category electronics --sort price-asc
  storefront browse --search shirt
  storefront browse --categories`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseCategory, "category", catalog.AllCategories, "category to show, or \"all\"")
	browseCmd.Flags().StringVar(&browseSearch, "search", "", "case-insensitive title search")
	browseCmd.Flags().StringVar(&browseSort, "sort", "", "none | price-asc | price-desc | rating-desc")
	browseCmd.Flags().BoolVar(&browseCategories, "categories", false, "list the category options instead of products")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	order, ok := catalog.ParseSortOrder(browseSort)
	if !ok {
		return fmt.Errorf("unknown sort order %q", browseSort)
	}

	ctx := cmd.Context()
	res, err := openResources(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer res.Close(log)

	products, err := res.products.GetAllProducts(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}

	if browseCategories {
		for _, c := range catalog.DeriveCategoryOptions(products) {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	}

	visible := catalog.DeriveVisibleProducts(products, catalog.FilterCriteria{
		Category:   browseCategory,
		SearchText: browseSearch,
		SortOrder:  order,
	})
	return printProducts(cmd.OutOrStdout(), visible)
}

func printProducts(w io.Writer, products []models.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tRATING")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f (%d)\n",
			p.ID, p.Title, p.Category, p.Price.StringFixed(2), p.Rating.Rate, p.Rating.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d products\n", len(products))
	return err
}
