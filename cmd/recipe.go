// ABOUTME: Recipe subcommands for a single saved recipe
// ABOUTME: show hydrates by id, delete removes, save persists a JSON payload

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pratiksef/pratiksef/internal/recipe"
	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Work with a single recipe",
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved recipe",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRecipeShow(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved recipe",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRecipeDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var recipeSaveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Save a recipe from a JSON file (use - for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRecipeSave(ctx, os.Stdin, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeShowCmd)
	recipeCmd.AddCommand(recipeDeleteCmd)
	recipeCmd.AddCommand(recipeSaveCmd)
}

// runRecipeShow fetches a recipe by id and returns exit code.
func runRecipeShow(ctx context.Context, w io.Writer, id string) int {
	c, _ := newClient()

	r, err := c.GetRecipe(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatRecipeJSON(r))
	} else {
		fmt.Fprintln(w, formatRecipeHuman(r))
	}
	return 0
}

// runRecipeDelete deletes a recipe by id and returns exit code.
func runRecipeDelete(ctx context.Context, w io.Writer, id string) int {
	c, _ := newClient()

	if err := c.DeleteRecipe(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, "Tarif silindi.")
	return 0
}

// runRecipeSave reads a recipe JSON payload and persists it.
func runRecipeSave(ctx context.Context, in io.Reader, w io.Writer, path string) int {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	var r recipe.Recipe
	if err := json.Unmarshal(data, &r); err != nil {
		fmt.Fprintf(w, "Error: tarif verisi okunamadı: %v\n", err)
		return 2
	}

	c, _ := newClient()
	id, err := c.SaveRecipe(ctx, &r)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Kaydedildi: %s\n", id)
	return 0
}
