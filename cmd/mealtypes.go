// ABOUTME: Mealtypes command printing the static meal type catalog
// ABOUTME: Read-only reference for the generate command's --meal-type flag

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pratiksef/pratiksef/internal/recipe"
	"github.com/spf13/cobra"
)

var mealtypesCmd = &cobra.Command{
	Use:   "mealtypes",
	Short: "List the meal type catalog",
	Run: func(cmd *cobra.Command, args []string) {
		runMealtypes(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(mealtypesCmd)
}

func runMealtypes(w io.Writer) {
	if IsJSONOutput() {
		fmt.Fprintln(w, formatMealtypesJSON())
	} else {
		fmt.Fprintln(w, formatMealtypesHuman())
	}
}

// formatMealtypesHuman formats the catalog for human readability
func formatMealtypesHuman() string {
	var b strings.Builder
	for _, m := range recipe.MealTypes {
		fmt.Fprintf(&b, "%-10s %-12s %s\n", m.ID, m.Title, m.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatMealtypesJSON formats the catalog as JSON
func formatMealtypesJSON() string {
	entries := make([]map[string]string, len(recipe.MealTypes))
	for i, m := range recipe.MealTypes {
		entries[i] = map[string]string{
			"id":          m.ID,
			"title":       m.Title,
			"description": m.Description,
		}
	}
	data, _ := json.MarshalIndent(entries, "", "  ")
	return string(data)
}
