package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, maxlen int, script string) ([]string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newRunner(&out, maxlen).Run(strings.NewReader(script))
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n"), err
}

func TestRunnerScenario(t *testing.T) {
	got, err := run(t, 0, `
# build [c a b]
insert 0 a
insert 1 b
INSERT 0 c
len
dump
get -1
remove 0
len
dump
indexof 0 b
indexof 0 z
set 1 x
dump
`)
	require.NoError(t, err)

	want := []string{"3", "c a b", "b", "c", "2", "a b", "1", "-1", "b", "a x"}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("output diff: (-got +want)\n%s", diff)
	}
}

func TestRunnerHash(t *testing.T) {
	got, err := run(t, 0, "hash bkdr hello\nhash djb hello\nhash xx \"\"\nhash sip x\n")
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Equal(t, "99162322", got[0])
	require.Equal(t, "261238937", got[1])
	require.Len(t, got[2], 16)
	require.Len(t, got[3], 16)
}

func TestRunnerStats(t *testing.T) {
	got, err := run(t, 0, "push a\npush b\nget 0\nstats\n")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "get=1 set=0 insert=2 remove=0 forward=2 backward=0"}, got)
}

func TestRunnerErrors(t *testing.T) {
	cases := []struct {
		Script string
		Error  string
	}{
		{"frobnicate", `line 1: unknown command "frobnicate"`},
		{"push a\nget", "line 2: get: want 1 arguments, got 0"},
		{"get 0", "line 1: get 0: list is empty"},
		{"remove -1", "line 1: remove -1: list is empty"},
		{"insert x a", `line 1: bad index "x"`},
		{"hash md5 a", `line 1: hash: unknown algorithm "md5"`},
		{"push a\npush b\npush c", "line 3: insert at 2: ringlist: list is full"},
	}

	for _, c := range cases {
		_, err := run(t, 2, c.Script)
		if err == nil {
			t.Errorf("script %q: want error %q, got nil", c.Script, c.Error)
			continue
		}
		if !strings.HasPrefix(err.Error(), c.Error) {
			t.Errorf("script %q: want error %q, got %q", c.Script, c.Error, err.Error())
		}
	}
}
