// ABOUTME: Recipes command listing the user's saved recipes
// ABOUTME: Pages through the listing endpoint via the client-side pager

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pratiksef/pratiksef/internal/client"
	"github.com/pratiksef/pratiksef/internal/recipe"
	"github.com/spf13/cobra"
)

var (
	recipesLimit int
	recipesAll   bool
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List your saved recipes",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRecipes(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(recipesCmd)
	recipesCmd.Flags().IntVar(&recipesLimit, "limit", client.DefaultPageSize, "Page size")
	recipesCmd.Flags().BoolVar(&recipesAll, "all", false, "Fetch every page")
}

// runRecipes executes the listing and returns exit code.
func runRecipes(ctx context.Context, w io.Writer) int {
	c, _ := newClient()
	list := client.NewRecipeList(c, recipesLimit)

	if recipesAll {
		if err := list.LoadAll(ctx); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	} else {
		if _, err := list.LoadMore(ctx); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatRecipesJSON(list.Items(), list.HasMore()))
	} else {
		fmt.Fprintln(w, formatRecipesHuman(list.Items(), list.HasMore()))
	}
	return 0
}

// formatRecipesHuman formats the listing for human readability
func formatRecipesHuman(items []recipe.Summary, hasMore bool) string {
	if len(items) == 0 {
		return "Henüz kayıtlı tarif yok."
	}

	var b strings.Builder
	for _, item := range items {
		date := ""
		if !item.CreatedAt.IsZero() {
			date = item.CreatedAt.Format("02.01.2006")
		}
		fmt.Fprintf(&b, "%-26s %10s  %s\n", item.ID, date, item.Title)
	}
	if hasMore {
		fmt.Fprintf(&b, "\n(devamı var — --all ile tamamını getirin)")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatRecipesJSON formats the listing as JSON
func formatRecipesJSON(items []recipe.Summary, hasMore bool) string {
	output := map[string]any{
		"items":   items,
		"hasMore": hasMore,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
