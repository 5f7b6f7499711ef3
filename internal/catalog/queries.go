package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// List returns all recipes in insertion order.
func (s *Store) List(ctx context.Context) ([]Recipe, error) {
	rows, err := s.QueryContext(ctx, `
		SELECT id, name, description, cook_time, servings, cuisine, difficulty,
		       ingredients, instructions
		FROM recipes ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *r)
	}
	return recipes, rows.Err()
}

// Get retrieves a recipe by ID. It returns nil, nil when the ID is not
// in the catalog.
func (s *Store) Get(ctx context.Context, id string) (*Recipe, error) {
	row := s.QueryRowContext(ctx, `
		SELECT id, name, description, cook_time, servings, cuisine, difficulty,
		       ingredients, instructions
		FROM recipes WHERE id = ?
	`, id)

	r, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Count returns the number of recipes in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n)
	return n, err
}

// Put inserts a recipe, assigning a UUID when the record has no ID.
func (s *Store) Put(ctx context.Context, r *Recipe) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	ingredients, err := json.Marshal(r.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode ingredients: %w", err)
	}
	instructions, err := json.Marshal(r.Instructions)
	if err != nil {
		return fmt.Errorf("failed to encode instructions: %w", err)
	}

	_, err = s.ExecContext(ctx, `
		INSERT INTO recipes (
			id, name, description, cook_time, servings, cuisine, difficulty,
			ingredients, instructions, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
			COALESCE((SELECT MAX(position) FROM recipes), 0) + 1)
	`,
		r.ID, r.Name, r.Description, r.CookTime, r.Servings, r.Cuisine,
		r.Difficulty, string(ingredients), string(instructions),
	)
	return err
}

// PutAll inserts recipes in order inside a single transaction.
func (s *Store) PutAll(ctx context.Context, recipes []*Recipe) error {
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, r := range recipes {
		if r.ID == "" {
			r.ID = uuid.New().String()
		}

		ingredients, err := json.Marshal(r.Ingredients)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to encode ingredients: %w", err)
		}
		instructions, err := json.Marshal(r.Instructions)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to encode instructions: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO recipes (
				id, name, description, cook_time, servings, cuisine, difficulty,
				ingredients, instructions, position
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?,
				COALESCE((SELECT MAX(position) FROM recipes), 0) + 1)
		`,
			r.ID, r.Name, r.Description, r.CookTime, r.Servings, r.Cuisine,
			r.Difficulty, string(ingredients), string(instructions),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert recipe %q: %w", r.Name, err)
		}
	}

	return tx.Commit()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecipe(row scanner) (*Recipe, error) {
	r := &Recipe{}
	var ingredients, instructions string

	err := row.Scan(
		&r.ID, &r.Name, &r.Description, &r.CookTime, &r.Servings,
		&r.Cuisine, &r.Difficulty, &ingredients, &instructions,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(ingredients), &r.Ingredients); err != nil {
		return nil, fmt.Errorf("failed to decode ingredients for %s: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(instructions), &r.Instructions); err != nil {
		return nil, fmt.Errorf("failed to decode instructions for %s: %w", r.ID, err)
	}

	return r, nil
}
