// Command mazegen generates a perfect maze and prints it as an adjacency
// list or an adjacency matrix.
//
// Without flags it asks for the width, the height and the output format on
// standard input. With flags it runs non-interactively:
//
//	mazegen -width 20 -height 10 -seed 42 -format matrix
//	mazegen -width 5 -height 5 -verify
//	mazegen -serve
//
// Defaults come from the environment or a .env file (see package config).
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazegraph/api"
	"github.com/katalvlaran/mazegraph/config"
	"github.com/katalvlaran/mazegraph/maze"
	"github.com/katalvlaran/mazegraph/verify"
)

const (
	formatList   = "list"
	formatMatrix = "matrix"
)

var (
	errDimensions = errors.New("Error: Width and height must be positive integers.")
	errFormat     = errors.New("Invalid output format choice.")
)

// job is one fully resolved generation request.
type job struct {
	width, height int
	seed          int64
	hasSeed       bool
	format        string
	render        bool
	verify        bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main with injectable streams; it returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("[APP] [ERROR] %v", err)
		return 1
	}

	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	width := fs.Int("width", cfg.Width, "maze width in cells")
	height := fs.Int("height", cfg.Height, "maze height in cells")
	seed := fs.String("seed", "", "64-bit seed for a reproducible maze (default MAZE_SEED, else the clock)")
	format := fs.String("format", cfg.Format, "output format: list or matrix")
	render := fs.Bool("render", true, "print the ASCII drawing of the maze")
	check := fs.Bool("verify", false, "check that the maze is a spanning tree")
	serve := fs.Bool("serve", false, "serve mazes over HTTP instead of printing one")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *serve {
		return serveHTTP(cfg)
	}

	var j job
	if fs.NFlag() == 0 {
		j, err = prompt(bufio.NewReader(stdin), stdout, cfg)
	} else {
		j, err = fromFlags(cfg, *width, *height, *seed, *format, *render, *check)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := execute(stdout, j); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// prompt asks for the maze parameters the way the interactive tool always has.
func prompt(in io.Reader, out io.Writer, cfg config.Config) (job, error) {
	var width, height int
	fmt.Fprint(out, "Enter maze width: ")
	if _, err := fmt.Fscan(in, &width); err != nil {
		return job{}, errDimensions
	}
	fmt.Fprint(out, "Enter maze height: ")
	if _, err := fmt.Fscan(in, &height); err != nil {
		return job{}, errDimensions
	}
	if width <= 0 || height <= 0 {
		return job{}, errDimensions
	}

	fmt.Fprintln(out, "Choose output format:")
	fmt.Fprintln(out, "  A) Adjacency List")
	fmt.Fprintln(out, "  M) Adjacency Matrix (Graph)")
	fmt.Fprint(out, "Enter choice (A/M): ")
	var choice string
	if _, err := fmt.Fscan(in, &choice); err != nil {
		return job{}, errFormat
	}
	format, err := parseFormat(choice)
	if err != nil {
		return job{}, err
	}

	return job{
		width:   width,
		height:  height,
		seed:    cfg.Seed,
		hasSeed: cfg.HasSeed,
		format:  format,
		render:  true,
	}, nil
}

// fromFlags validates flag values; an empty seed falls back to the config.
func fromFlags(cfg config.Config, width, height int, seed, format string, render, check bool) (job, error) {
	if width <= 0 || height <= 0 {
		return job{}, errDimensions
	}
	f, err := parseFormat(format)
	if err != nil {
		return job{}, err
	}
	j := job{
		width:   width,
		height:  height,
		seed:    cfg.Seed,
		hasSeed: cfg.HasSeed,
		format:  f,
		render:  render,
		verify:  check,
	}
	if seed != "" {
		s, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return job{}, fmt.Errorf("invalid seed %q: %w", seed, err)
		}
		j.seed, j.hasSeed = s, true
	}
	return j, nil
}

// parseFormat accepts the menu letters as well as the long names.
func parseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", formatList:
		return formatList, nil
	case "m", formatMatrix:
		return formatMatrix, nil
	default:
		return "", errFormat
	}
}

// execute generates the maze and writes the requested views to out.
func execute(out io.Writer, j job) error {
	var opts []maze.Option
	if j.hasSeed {
		opts = append(opts, maze.WithSeed(j.seed))
	}
	m, err := maze.New(j.width, j.height, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Random Seed: %d\n", m.Seed())
	if err := m.Generate(); err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	if j.render {
		fmt.Fprintln(w, "\n--- Generated Maze ---")
		_ = m.Render(w)
		fmt.Fprintln(w, "----------------------")
		fmt.Fprintln(w)
	}

	adj := m.AdjacencyList()
	switch j.format {
	case formatList:
		writeList(w, adj)
	case formatMatrix:
		writeMatrix(w, m.AdjacencyMatrix())
	}

	if j.verify {
		rep, err := verify.SpanningTree(adj)
		fmt.Fprintf(w, "\nSpanning tree: %s\n", rep)
		if err != nil {
			_ = w.Flush()
			return err
		}
	}

	return w.Flush()
}

func writeList(w io.Writer, adj [][]int) {
	fmt.Fprintln(w, "\n--- Adjacency List Output ---")
	for i, nbrs := range adj {
		fmt.Fprintf(w, "Cell %d: ", i)
		if len(nbrs) == 0 {
			fmt.Fprint(w, "(No connections)")
		}
		for _, n := range nbrs {
			fmt.Fprintf(w, "%d ", n)
		}
		fmt.Fprintln(w)
	}
}

func writeMatrix(w io.Writer, mat [][]uint8) {
	fmt.Fprintln(w, "\n--- Adjacency Matrix Output ---")
	for _, row := range mat {
		for _, x := range row {
			fmt.Fprintf(w, "%d ", x)
		}
		fmt.Fprintln(w)
	}
}

// serveHTTP runs the maze API until the listener fails.
func serveHTTP(cfg config.Config) int {
	router := api.NewRouter(api.Config{
		Addr:        cfg.Addr,
		BaseURL:     cfg.BaseURL,
		GinMode:     cfg.GinMode,
		Controllers: []api.Controller{api.NewMazeController(cfg.MaxCells)},
	})
	log.Printf("[APP] [INFO] Serving mazes on %s%s/v1/mazes (max %d cells)", cfg.Addr, cfg.BaseURL, cfg.MaxCells)
	if err := router.Run(); err != nil {
		log.Printf("[APP] [ERROR] HTTP server stopped: %v", err)
		return 1
	}
	return 0
}
