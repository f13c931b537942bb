package schema

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/negz/condraw/internal/output"
)

func newTestDB(t *testing.T, stmts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	w, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer w.Close()

	// Creating the schema table forces the file to exist even when empty.
	stmts = append([]string{"PRAGMA user_version = 1"}, stmts...)
	for _, stmt := range stmts {
		if _, err := w.ExecContext(context.Background(), stmt); err != nil {
			t.Fatalf("ExecContext(%q): %v", stmt, err)
		}
	}
	return path
}

func TestRun(t *testing.T) {
	type want struct {
		lines []string
	}
	cases := map[string]struct {
		reason string
		stmts  []string
		want   want
	}{
		"Tables": {
			reason: "Tables and views should be listed by name.",
			stmts: []string{
				"CREATE TABLE people (id INTEGER)",
				"CREATE VIEW everyone AS SELECT * FROM people",
			},
			want: want{lines: []string{
				"      Name|   Type",
				"  everyone|   view",
				"    people|  table",
			}},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cmd := &Command{
				TableFlags: output.TableFlags{Key: output.KeyAuto, Style: output.StylePlain},
				DB:         newTestDB(t, tc.stmts...),
			}

			b := &bytes.Buffer{}
			if err := cmd.Run(b, nil, nil); err != nil {
				t.Fatalf("\n%s\nRun(...): unexpected error: %v", tc.reason, err)
			}
			want := strings.Join(tc.want.lines, "\n") + "\n"
			if diff := cmp.Diff(want, b.String()); diff != "" {
				t.Errorf("\n%s\nRun(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestRunEmpty(t *testing.T) {
	path := newTestDB(t)
	cmd := &Command{
		TableFlags: output.TableFlags{Key: output.KeyAuto, Style: output.StylePlain},
		DB:         path,
	}

	b := &bytes.Buffer{}
	if err := cmd.Run(b, nil, nil); err != nil {
		t.Fatalf("Run(...): unexpected error: %v", err)
	}
	if diff := cmp.Diff("No tables in "+path+"\n", b.String()); diff != "" {
		t.Errorf("Run(...): -want, +got:\n%s", diff)
	}
}
