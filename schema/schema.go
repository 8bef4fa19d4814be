package schema

import (
	"fmt"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// Initialize sets up the rankings table and its indexes.
func Initialize(db *surrealdb.DB) error {
	schemas := []string{
		`DEFINE TABLE rankings SCHEMAFULL;
		 DEFINE FIELD metric ON rankings TYPE string;
		 DEFINE FIELD rank ON rankings TYPE int;
		 DEFINE FIELD value ON rankings TYPE int;
		 DEFINE FIELD file ON rankings TYPE string;
		 DEFINE FIELD line ON rankings TYPE int;
		 DEFINE FIELD created_at ON rankings TYPE datetime DEFAULT time::now();
		 DEFINE INDEX ranking_metric ON rankings FIELDS metric;
		 DEFINE INDEX ranking_order ON rankings FIELDS metric, rank;
		 DEFINE INDEX ranking_file ON rankings FIELDS file;`,
	}

	for _, schema := range schemas {
		if _, err := surrealdb.Query[any](db, schema, map[string]interface{}{}); err != nil {
			return fmt.Errorf("schema initialization error: %w", err)
		}
	}

	return nil
}
