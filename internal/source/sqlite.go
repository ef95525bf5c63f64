package source

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"sort"

	appErrors "treepick/internal/errors"
	"treepick/internal/tree"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Schema is the adjacency table LoadSQLite reads. position orders siblings;
// a NULL expand means no per-node override.
const Schema = `
CREATE TABLE IF NOT EXISTS nodes (
	id TEXT PRIMARY KEY,
	parent_id TEXT,
	label TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0,
	expand INTEGER
);`

type nodeRow struct {
	id       string
	parentID sql.NullString
	label    string
	position int64
	expand   sql.NullInt64
}

// buildSQLiteDSN creates a read-only DSN for the given path.
func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

// LoadSQLite reads the nodes table at dbPath and assembles the tree. Rows
// whose parent is missing become roots; a parent cycle is an error.
func LoadSQLite(ctx context.Context, dbPath string) ([]tree.Node, error) {
	db, err := sql.Open("sqlite", buildSQLiteDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite source: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		return nil, appErrors.New(appErrors.CodeSourceNotFound, "open sqlite source "+dbPath, err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, parent_id, label, position, expand
		FROM nodes
		ORDER BY position, id
	`)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, "query nodes", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []nodeRow
	for rows.Next() {
		var r nodeRow
		if err := rows.Scan(&r.id, &r.parentID, &r.label, &r.position, &r.expand); err != nil {
			return nil, appErrors.New(appErrors.CodeParseFailed, "scan node row", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeParseFailed, "iterate node rows", err)
	}
	return buildAdjacency(records)
}

func buildAdjacency(records []nodeRow) ([]tree.Node, error) {
	items := make(map[string]*tree.Item, len(records))
	parents := make(map[string]string, len(records))
	for _, r := range records {
		item := &tree.Item{
			ID:   r.id,
			Text: tree.PlainText(r.label),
			Fields: map[string]any{
				"position": r.position,
			},
		}
		if r.expand.Valid {
			open := r.expand.Int64 != 0
			item.Open = tree.ExpandFrom(&open)
		}
		items[r.id] = item
		if r.parentID.Valid && r.parentID.String != "" {
			parents[r.id] = r.parentID.String
		}
	}

	if err := ensureAcyclic(items, parents); err != nil {
		return nil, err
	}

	var roots []tree.Node
	for _, r := range records {
		item := items[r.id]
		parentID, hasParent := parents[r.id]
		parent, known := items[parentID]
		if !hasParent || !known {
			roots = append(roots, item)
			continue
		}
		parent.Items = append(parent.Items, item)
	}
	// Records arrive ordered by position, but keep siblings stable when the
	// caller built them by hand.
	sortByPosition(roots)
	for _, item := range items {
		sortByPosition(item.Items)
	}
	return roots, nil
}

func sortByPosition(nodes []tree.Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].(*tree.Item), nodes[j].(*tree.Item)
		pa, pb := a.Fields["position"].(int64), b.Fields["position"].(int64)
		if pa != pb {
			return pa < pb
		}
		return a.ID.(string) < b.ID.(string)
	})
}

func ensureAcyclic(items map[string]*tree.Item, parents map[string]string) error {
	visited := make(map[string]bool, len(items))
	onStack := make(map[string]bool)

	var visit func(id string, stack []string) error
	visit = func(id string, stack []string) error {
		if onStack[id] {
			stack = append(stack, id)
			return appErrors.New(appErrors.CodeCyclicTree, fmt.Sprintf("cyclic parent chain: %v", stack), nil)
		}
		if visited[id] {
			return nil
		}
		onStack[id] = true
		stack = append(stack, id)
		if parentID, ok := parents[id]; ok {
			if _, known := items[parentID]; known {
				if err := visit(parentID, stack); err != nil {
					return err
				}
			}
		}
		onStack[id] = false
		visited[id] = true
		return nil
	}

	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := visit(id, nil); err != nil {
			return err
		}
	}
	return nil
}
