package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/olekukonko/tablewriter"

	"github.com/Lillian-Frost/mchop/internal/catalog"
	"github.com/Lillian-Frost/mchop/internal/engine"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []engine.RecipeMatch:
		return matchesTable(w, v)
	case []catalog.Recipe:
		return recipesTable(w, v)
	case *catalog.Recipe:
		return recipeDetail(w, v)
	case map[string][]string:
		return substitutionsList(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func matchesTable(w io.Writer, matches []engine.RecipeMatch) error {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No recipes matched. Try more ingredients or a lower --min-score.")
		return nil
	}

	tbl := tablewriter.NewTable(w)
	tbl.Header("#", "RECIPE", "MATCH", "HAVE", "MISSING", "COOK TIME")

	for i, m := range matches {
		tbl.Append([]string{
			fmt.Sprintf("%d", i+1),
			truncate(m.Recipe.Name, 30),
			fmt.Sprintf("%.1f%%", m.Score*100),
			fmt.Sprintf("%d/%d", len(m.Available), len(m.Recipe.Ingredients)),
			fmt.Sprintf("%d", len(m.Missing)),
			m.Recipe.CookTime,
		})
	}

	if err := tbl.Render(); err != nil {
		return err
	}

	// Substitution hints for whatever is missing.
	for _, m := range matches {
		if len(m.Substitutions) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s - possible substitutions:\n", m.Recipe.Name)
		for _, ing := range m.Missing {
			if subs, ok := m.Substitutions[ing]; ok {
				fmt.Fprintf(w, "  %s: %s\n", ing, strings.Join(subs, ", "))
			}
		}
	}

	return nil
}

func recipesTable(w io.Writer, recipes []catalog.Recipe) error {
	if len(recipes) == 0 {
		fmt.Fprintln(w, "The catalog is empty. Run 'mchop import' to add recipes.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tDIFFICULTY\tCOOK TIME\tSERVINGS")
	fmt.Fprintln(tw, "--\t----\t-------\t----------\t---------\t--------")

	for _, r := range recipes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			truncate(r.ID, 28),
			truncate(r.Name, 30),
			r.Cuisine,
			r.Difficulty,
			r.CookTime,
			r.Servings,
		)
	}

	return tw.Flush()
}

func recipeDetail(w io.Writer, r *catalog.Recipe) error {
	fmt.Fprintf(w, "%s\n", r.Name)
	fmt.Fprintln(w, strings.Repeat("=", len(r.Name)))

	if r.Description != "" {
		fmt.Fprintf(w, "%s\n", r.Description)
	}
	fmt.Fprintln(w)

	if r.Cuisine != "" {
		fmt.Fprintf(w, "Cuisine:     %s\n", r.Cuisine)
	}
	if r.Difficulty != "" {
		fmt.Fprintf(w, "Difficulty:  %s\n", r.Difficulty)
	}
	if r.CookTime != "" {
		fmt.Fprintf(w, "Cook time:   %s\n", r.CookTime)
	}
	if r.Servings > 0 {
		fmt.Fprintf(w, "Servings:    %d\n", r.Servings)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ingredients:")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", ing)
	}

	if len(r.Instructions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Instructions:")
		for i, step := range r.Instructions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step)
		}
	}

	return nil
}

func substitutionsList(w io.Writer, subs map[string][]string) error {
	if len(subs) == 0 {
		fmt.Fprintln(w, "No substitutions found.")
		return nil
	}

	// Sorted for stable output; the map key order is not meaningful.
	keys := make([]string, 0, len(subs))
	for k := range subs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INGREDIENT\tSUBSTITUTES")
	fmt.Fprintln(tw, "----------\t-----------")
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%s\n", k, strings.Join(subs[k], ", "))
	}

	return tw.Flush()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
