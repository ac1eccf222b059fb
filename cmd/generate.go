// ABOUTME: Generate command producing a recipe from ingredients
// ABOUTME: Supports alternative regeneration and immediate saving

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
	generateMealType    string
	generateAlternative bool
	generateSave        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <ingredients>...",
	Short: "Generate a recipe from the ingredients you have",
	Long: `Generate a recipe from a list of ingredients.

Exit codes:
  0 - Recipe generated
  1 - Daily generation limit reached
  2 - Error (not signed in, connectivity, invalid input)`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGenerate(ctx, os.Stdout, strings.Join(args, ", "))
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateMealType, "meal-type", recipe.MealTypes[0].ID, "Meal type id (see `pratiksef mealtypes`)")
	generateCmd.Flags().BoolVar(&generateAlternative, "alternative", false, "Ask for an alternative take on the same ingredients")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Save the generated recipe immediately")
}

// runGenerate executes the generation exchange and returns exit code.
func runGenerate(ctx context.Context, w io.Writer, ingredients string) int {
	if _, ok := recipe.MealTypeByID(generateMealType); !ok {
		fmt.Fprintf(w, "Error: bilinmeyen öğün türü %q\n", generateMealType)
		return 2
	}

	c, _ := newClient()

	r, err := c.GenerateRecipe(ctx, ingredients, generateMealType, generateAlternative)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		if client.IsKind(err, client.KindRateLimit) {
			return 1
		}
		return 2
	}

	if generateSave {
		if _, err := c.SaveRecipe(ctx, r); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatRecipeJSON(r))
	} else {
		fmt.Fprintln(w, formatRecipeHuman(r))
		if r.Saved() {
			fmt.Fprintf(w, "\nKaydedildi: %s\n", r.SavedID)
		}
	}
	return 0
}

// formatRecipeHuman formats a full recipe for human readability
func formatRecipeHuman(r *recipe.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", r.Title)
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n", r.Description)
	}
	if r.MealType != "" {
		fmt.Fprintf(&b, "Öğün: %s\n", r.MealType)
	}

	fmt.Fprintf(&b, "\nMalzemeler:\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "  • %s\n", ing)
	}

	fmt.Fprintf(&b, "\nAdımlar:\n")
	for i, step := range r.Steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}

	if r.ImageURL != "" {
		fmt.Fprintf(&b, "\nGörsel: %s\n", r.ImageURL)
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatRecipeJSON formats a full recipe as JSON
func formatRecipeJSON(r *recipe.Recipe) string {
	data, _ := json.MarshalIndent(r, "", "  ")
	return string(data)
}
