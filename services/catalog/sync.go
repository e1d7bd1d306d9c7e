// Package catalog turns the denormalized source dataset into normalized
// rows: it grows the reference tables, loads games with their sales and
// platform links atomically, and exposes the explicit association
// operations.
package catalog

import (
	"fmt"

	"gorm.io/gorm"

	"Ludex/models"
)

// SyncReferences grows one reference table from the distinct values of a
// dataset column. The current table content is read once per call (never
// per row), the missing rows are created in a single batch inside the
// caller's transaction, and the merged name -> entity mapping comes back
// with identifiers populated.
//
// Matching is byte-exact: no trimming, no case folding. Blank values and
// duplicates in the input are ignored. Because the table is re-read on
// every call, running it twice against an unchanged table creates nothing.
func SyncReferences[T models.Reference](tx *gorm.DB, values []string, construct func(name string) T) (map[string]T, error) {
	var rows []T
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading reference table: %w", err)
	}

	existing := make(map[string]T, len(rows))
	for _, r := range rows {
		existing[r.ReferenceName()] = r
	}

	var missing []T
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		if _, ok := existing[v]; !ok {
			missing = append(missing, construct(v))
		}
	}

	if len(missing) > 0 {
		if err := tx.Create(&missing).Error; err != nil {
			return nil, fmt.Errorf("creating reference rows: %w", err)
		}
		for _, m := range missing {
			existing[m.ReferenceName()] = m
		}
	}

	return existing, nil
}
