package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/studentdir"
	"github.com/hupe1980/studentdir/codec"
	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runShell(t *testing.T, input string) []string {
	t.Helper()

	dir, err := studentdir.New()
	require.NoError(t, err)

	var out bytes.Buffer
	sh := &shell{dir: dir, codec: codec.JSON{}, known: knownMajors, out: &out}
	require.NoError(t, sh.run(context.Background(), strings.NewReader(input)))

	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestShellScenario(t *testing.T) {
	lines := runShell(t, `
# insert, then move to another major
save 1234 Jack Knitting
majors
save 1234 Jim Ninjitsu
get 1234
major Knitting
major Ninjitsu
list
`)

	require.Len(t, lines, 7)
	assert.JSONEq(t, `{"id":1234,"name":"Jack","major":"Knitting"}`, lines[0])
	assert.JSONEq(t, `["Knitting"]`, lines[1])
	assert.JSONEq(t, `{"id":1234,"name":"Jim","major":"Ninjitsu"}`, lines[2])
	assert.JSONEq(t, `{"id":1234,"name":"Jim","major":"Ninjitsu"}`, lines[3])
	assert.JSONEq(t, `[]`, lines[4])
	assert.JSONEq(t, `[{"id":1234,"name":"Jim","major":"Ninjitsu"}]`, lines[5])
	assert.JSONEq(t, `[{"id":1234,"name":"Jim","major":"Ninjitsu"}]`, lines[6])
}

func TestShellQuotedArguments(t *testing.T) {
	lines := runShell(t, `save 0 "Jack Smith" "Basket Weaving"
major "Basket Weaving"`)

	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"id":1,"name":"Jack Smith","major":"Basket Weaving"}`, lines[0])
	assert.JSONEq(t, `[{"id":1,"name":"Jack Smith","major":"Basket Weaving"}]`, lines[1])
}

func TestShellErrors(t *testing.T) {
	lines := runShell(t, `get 7
delete 7
save 1 " " Knitting
get abc
frobnicate
save 1 "unterminated`)

	require.Len(t, lines, 6)
	for _, line := range lines {
		assert.Contains(t, line, `"error"`)
	}
	assert.Contains(t, lines[0], "not found")
	assert.Contains(t, lines[2], "name")
	assert.Contains(t, lines[4], "frobnicate")
}

func TestShellDeleteAndQuit(t *testing.T) {
	lines := runShell(t, `save 1 Jack Knitting
delete 1
majors
quit
list`)

	require.Len(t, lines, 3)
	assert.JSONEq(t, `{"deleted":1}`, lines[1])
	assert.JSONEq(t, `[]`, lines[2])
}

func TestShellKnownAndHelp(t *testing.T) {
	lines := runShell(t, "known\nhelp")

	assert.JSONEq(t, `["Knitting","Ninjitsu","Basket Weaving","Underwater Origami"]`, lines[0])
	assert.Equal(t, "commands:", lines[1])
}

func TestShellLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"id": 1234, "name": "Jack", "major": "Knitting"},
  {"name": "Jill", "major": "Ninjitsu"},
  {"id": 7, "name": "", "major": "Knitting"}
]`), 0o600))

	lines := runShell(t, "load "+shellquote.Join(path)+`
majors
major Ninjitsu`)

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"saved":2`)
	assert.Contains(t, lines[0], `"failed":1`)
	assert.Contains(t, lines[0], "record 2: invalid record: name")
	assert.JSONEq(t, `["Knitting","Ninjitsu"]`, lines[1])
	assert.JSONEq(t, `[{"id":1235,"name":"Jill","major":"Ninjitsu"}]`, lines[2])
}

func TestShellLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"id":`), 0o600))

	lines := runShell(t, "load "+shellquote.Join(filepath.Join(dir, "missing.json"))+`
load `+shellquote.Join(bad)+`
list`)

	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"error"`)
	assert.Contains(t, lines[1], `"error"`)
	assert.Contains(t, lines[1], "bad.json")
	assert.JSONEq(t, `[]`, lines[2])
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "Knitting, Ninjitsu", want: []string{"Knitting", "Ninjitsu"}},
		{in: " Basket Weaving ,,Alchemy ", want: []string{"Basket Weaving", "Alchemy"}},
		{in: " , ", want: nil},
		{in: "", want: nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitList(tt.in), tt.in)
	}
}
