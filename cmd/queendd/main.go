// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// queendd counts the solutions of the n-queens problem for one or more board
// sizes, all sharing a single decision-diagram engine.
//
//	queendd [options] <N> [<N> ...]
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/augists/queendd/bdd"
	"github.com/augists/queendd/queens"
	"gopkg.in/yaml.v3"
)

// config mirrors the YAML file accepted with -f. Board sizes given on the
// command line take precedence over the ones from the file.
type config struct {
	MemoryMB   int   `yaml:"memory_mb"`
	CacheRatio int   `yaml:"cache_ratio"`
	Sizes      []int `yaml:"sizes"`
}

// nodebytes approximates the memory footprint of one table node, cache entry
// included. It only needs to be close enough to honor the -mem budget.
const nodebytes = 48

var flagMem = flag.Int("mem", 512, "memory budget for the node table, in MB")
var flagConf = flag.String("f", "", "YAML configuration file")
var flagStats = flag.Bool("stats", false, "print engine statistics after the last solve")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] <N> [<N> ...]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config{}
	if *flagConf != "" {
		data, err := os.ReadFile(*flagConf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot read configuration: %s\n", err)
			os.Exit(1)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "cannot parse configuration: %s\n", err)
			os.Exit(1)
		}
	}
	// flags win over the file for scalar values
	memset := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "mem" {
			memset = true
		}
	})
	if memset || cfg.MemoryMB <= 0 {
		cfg.MemoryMB = *flagMem
	}
	// board sizes on the command line replace the ones from the file
	if flag.NArg() > 0 {
		cfg.Sizes = cfg.Sizes[:0]
		for _, arg := range flag.Args() {
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "bad board size %q: %s\n", arg, err)
				os.Exit(1)
			}
			cfg.Sizes = append(cfg.Sizes, n)
		}
	}
	if len(cfg.Sizes) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	maxn := cfg.Sizes[0]
	for _, n := range cfg.Sizes {
		if n > maxn {
			maxn = n
		}
	}
	if maxn <= 0 {
		fmt.Fprintf(os.Stderr, "board size must be positive, got %d\n", maxn)
		os.Exit(1)
	}

	maxnodes := cfg.MemoryMB * 1024 * 1024 / nodebytes
	initial := 1 << 18
	if initial > maxnodes {
		initial = maxnodes
	}
	options := []bdd.Option{bdd.Nodesize(initial), bdd.Maxnodesize(maxnodes)}
	if cfg.CacheRatio > 0 {
		options = append(options, bdd.Cacheratio(cfg.CacheRatio))
	}
	b, err := bdd.New(maxn*maxn, options...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot initialize engine: %s\n", err)
		os.Exit(1)
	}

	for _, n := range cfg.Sizes {
		res, err := queens.Solve(b, n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "size %d: %s\n", n, err)
			os.Exit(1)
		}
		fmt.Printf("NQUEENS_METRICS n=%d solutions=%s nodes=%d\n", res.N, res.Solutions, res.NodesCreated)
	}
	if *flagStats {
		fmt.Println(b.Stats())
	}
}
