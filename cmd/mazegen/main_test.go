package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate blanks the variables config.Load reads so the host environment
// cannot change defaults.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{"MAZE_WIDTH", "MAZE_HEIGHT", "MAZE_SEED", "MAZE_FORMAT"} {
		t.Setenv(k, "")
	}
}

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_FlagsReproducible(t *testing.T) {
	isolate(t)

	code, first, _ := runWith(t, "", "-width", "5", "-height", "5", "-seed", "12345")
	require.Equal(t, 0, code)
	code, second, _ := runWith(t, "", "-width", "5", "-height", "5", "-seed", "12345")
	require.Equal(t, 0, code)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "Random Seed: 12345\n"))
	assert.Contains(t, first, "--- Generated Maze ---")
	assert.Contains(t, first, "--- Adjacency List Output ---")
	assert.Equal(t, 25, strings.Count(first, "\nCell "))
}

func TestRun_Matrix(t *testing.T) {
	isolate(t)

	code, out, _ := runWith(t, "", "-width", "3", "-height", "1", "-seed", "1", "-format", "matrix", "-render=false")
	require.Equal(t, 0, code)
	want := "Random Seed: 1\n" +
		"\n--- Adjacency Matrix Output ---\n" +
		"0 1 0 \n" +
		"1 0 1 \n" +
		"0 1 0 \n"
	assert.Equal(t, want, out)
}

func TestRun_SingleCell(t *testing.T) {
	isolate(t)

	code, out, _ := runWith(t, "", "-width", "1", "-height", "1", "-render=false")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Cell 0: (No connections)\n")
}

func TestRun_Verify(t *testing.T) {
	isolate(t)

	code, out, _ := runWith(t, "", "-width", "5", "-height", "5", "-seed", "12345", "-verify", "-render=false")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Spanning tree: vertices=25 edges=24 symmetric=true connected=true acyclic=true")
}

func TestRun_SeedFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("MAZE_SEED", "99")

	code, out, _ := runWith(t, "", "-width", "4", "-height", "4")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "Random Seed: 99\n"))
}

func TestRun_Interactive(t *testing.T) {
	isolate(t)
	t.Setenv("MAZE_SEED", "7")

	code, out, stderr := runWith(t, "3\n1\nA\n")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, out, "Enter maze width: Enter maze height: Choose output format:\n")
	assert.Contains(t, out, "Enter choice (A/M): Random Seed: 7\n")
	assert.Contains(t, out, "|           |\n")
	assert.Contains(t, out, "Cell 0: 1 \nCell 1: 2 0 \nCell 2: 1 \n")
}

func TestRun_InteractiveMatrixLowercase(t *testing.T) {
	isolate(t)

	code, out, _ := runWith(t, "2 1 m\n")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "--- Adjacency Matrix Output ---\n0 1 \n1 0 \n")
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name   string
		stdin  string
		args   []string
		code   int
		stderr string
	}{
		{"ZeroWidth", "0\n5\n", nil, 1, "Width and height must be positive integers."},
		{"NotANumber", "ten\n", nil, 1, "Width and height must be positive integers."},
		{"BadChoice", "3\n3\nX\n", nil, 1, "Invalid output format choice."},
		{"NegativeFlag", "", []string{"-width", "-2"}, 1, "Width and height must be positive integers."},
		{"BadFormatFlag", "", []string{"-format", "dot"}, 1, "Invalid output format choice."},
		{"BadSeedFlag", "", []string{"-seed", "x"}, 1, "invalid seed"},
		{"UnknownFlag", "", []string{"-nope"}, 2, "flag provided but not defined"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			code, _, stderr := runWith(t, tc.stdin, tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Contains(t, stderr, tc.stderr)
		})
	}
}
