package table

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/negz/condraw/internal/output"
	"github.com/negz/condraw/internal/table"
)

func TestRun(t *testing.T) {
	people := []string{"     Id|  First Name|  Last Name", "      1|        John|      Cater", "      2|       Emily|    William"}

	type args struct {
		stdin string
	}
	type want struct {
		lines []string
		err   error
	}
	cases := map[string]struct {
		reason string
		cmd    Command
		args   args
		want   want
	}{
		"Args": {
			reason: "Rows given as arguments should be drawn.",
			cmd: Command{
				TableFlags: output.TableFlags{Key: output.KeyAuto, Style: output.StylePlain},
				Columns:    []string{"Id", "First Name", "Last Name"},
				Overflow:   output.OverflowReject,
				Rows:       []string{"1,John,Cater", "2,Emily,William"},
			},
			want: want{lines: people},
		},
		"Stdin": {
			reason: "Rows should be read from stdin when no arguments are given, skipping blank lines.",
			cmd: Command{
				TableFlags: output.TableFlags{Key: output.KeyAuto, Style: output.StylePlain},
				Columns:    []string{"Id", "First Name", "Last Name"},
				Overflow:   output.OverflowReject,
			},
			args: args{stdin: "1,John,Cater\r\n\n2,Emily,William\n"},
			want: want{lines: people},
		},
		"HeaderSeparator": {
			reason: "The header separator flag should draw a rule after the header.",
			cmd: Command{
				TableFlags: output.TableFlags{HeaderSeparator: true, Key: output.KeyAuto, Style: output.StylePlain},
				Columns:    []string{"Id", "First Name", "Last Name"},
				Overflow:   output.OverflowReject,
				Rows:       []string{"1,John,Cater"},
			},
			want: want{lines: []string{people[0], strings.Repeat("-", 32), people[1]}},
		},
		"SchemaMismatch": {
			reason: "A row with the wrong number of fields should fail.",
			cmd: Command{
				TableFlags: output.TableFlags{Key: output.KeyAuto, Style: output.StylePlain},
				Columns:    []string{"Id", "First Name", "Last Name"},
				Overflow:   output.OverflowReject,
				Rows:       []string{"x,y"},
			},
			want: want{err: table.ErrSchemaMismatch},
		},
		"DuplicateKey": {
			reason: "A repeated Id should fail.",
			cmd: Command{
				TableFlags: output.TableFlags{Key: output.KeyAuto, Style: output.StylePlain},
				Columns:    []string{"Id", "First Name", "Last Name"},
				Overflow:   output.OverflowReject,
				Rows:       []string{"1,John,Cater", "1,Jane,Doe"},
			},
			want: want{err: table.ErrDuplicateKey},
		},
		"DuplicateKeyOff": {
			reason: "A repeated Id should be allowed when key enforcement is off.",
			cmd: Command{
				TableFlags: output.TableFlags{Key: output.KeyOff, Style: output.StylePlain},
				Columns:    []string{"Id", "Name"},
				Overflow:   output.OverflowReject,
				Rows:       []string{"1,John", "1,Jane"},
			},
			want: want{lines: []string{"     Id|   Name", "      1|   John", "      1|   Jane"}},
		},
		"DuplicateKeyOn": {
			reason: "A repeated first value should fail when key enforcement is on, even without an Id header.",
			cmd: Command{
				TableFlags: output.TableFlags{Key: output.KeyOn, Style: output.StylePlain},
				Columns:    []string{"Name", "Age"},
				Overflow:   output.OverflowReject,
				Rows:       []string{"John,30", "John,31"},
			},
			want: want{err: table.ErrDuplicateKey},
		},
		"Overflow": {
			reason: "A value too wide for any column should fail when rejecting.",
			cmd: Command{
				TableFlags: output.TableFlags{Key: output.KeyAuto, Style: output.StylePlain},
				Columns:    []string{"Name"},
				Overflow:   output.OverflowReject,
				Rows:       []string{strings.Repeat("x", 20)},
			},
			want: want{err: table.ErrOverflowField},
		},
		"DuplicateColumns": {
			reason: "Duplicate column headers should fail.",
			cmd: Command{
				TableFlags: output.TableFlags{Key: output.KeyAuto, Style: output.StylePlain},
				Columns:    []string{"Name", "Name"},
				Overflow:   output.OverflowReject,
			},
			want: want{err: table.ErrInvalidArgument},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			b := &bytes.Buffer{}
			err := tc.cmd.Run(b, strings.NewReader(tc.args.stdin), nil, slog.New(slog.DiscardHandler))
			if diff := cmp.Diff(tc.want.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("\n%s\nRun(...): -want error, +got error:\n%s", tc.reason, diff)
			}
			if err != nil {
				return
			}
			want := strings.Join(tc.want.lines, "\n") + "\n"
			if diff := cmp.Diff(want, b.String()); diff != "" {
				t.Errorf("\n%s\nRun(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestRunGrid(t *testing.T) {
	cmd := Command{
		TableFlags: output.TableFlags{Key: output.KeyAuto, Style: output.StyleGrid},
		Columns:    []string{"Id", "Name"},
		Overflow:   output.OverflowReject,
		Rows:       []string{"1,Johnathan"},
	}

	b := &bytes.Buffer{}
	if err := cmd.Run(b, strings.NewReader(""), nil, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("Run(...): unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), "Johnathan") {
		t.Errorf("Run(...): grid output is missing a cell:\n%s", b.String())
	}
}
