package iooptimize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
)

// orphanRule deletes rows of a table that point to missing records.
type orphanRule struct {
	table string
	where string
}

// orphanRules are ordered so that rows of pokemon are checked after
// the records they depend on.
var orphanRules = []orphanRule{
	{"type_changes", "type_id NOT IN (SELECT id FROM types)"},
	{"move_changes", "move_id NOT IN (SELECT id FROM moves)"},
	{"pokemon_type_changes", "pokemon_id NOT IN (SELECT id FROM pokemon)"},
	{"pokemon_moves",
		"pokemon_id NOT IN (SELECT id FROM pokemon) " +
			"OR move_name NOT IN (SELECT name FROM moves)"},
	{"pokemon_abilities",
		"pokemon_id NOT IN (SELECT id FROM pokemon) " +
			"OR ability_name NOT IN (SELECT name FROM abilities)"},
}

// removeOrphans applies every orphan rule and returns a summary for
// the user.
func removeOrphans(ctx context.Context, o *optimizer) (string, error) {
	var total int64
	for _, rule := range orphanRules {
		count, err := removeOrphanRows(ctx, o, rule)
		if err != nil {
			return "", err
		}
		total += count
	}

	msg := "<em>No orphaned records found</em>"
	if total > 0 {
		msg = fmt.Sprintf(
			"<em>Removed %s orphaned records</em>",
			humanize.Comma(total),
		)
	}
	return msg, nil
}

func removeOrphanRows(ctx context.Context, o *optimizer, rule orphanRule) (int64, error) {
	q := fmt.Sprintf("DELETE FROM %s WHERE %s", rule.table, rule.where)
	res, err := o.operator.DB().ExecContext(ctx, q)
	if err != nil {
		return 0, OrphansError(rule.table, err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, OrphansError(rule.table, err)
	}
	if count > 0 {
		slog.Info("Removed orphans", "table", rule.table, "count", count)
	}
	return count, nil
}
