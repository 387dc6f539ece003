package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"wbs_generator/src/wbs"
)

// parseList reads a comma-separated numeric list, with or without the
// surrounding [brackets] the original tooling used.
func parseList[T constraints.Integer | constraints.Float](s string, conv func(string) (T, error)) ([]T, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]")
	tokens := strings.Split(s, ",")
	values := make([]T, len(tokens))
	for i, tok := range tokens {
		v, err := conv(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func main() {
	cfg := &wbs.Config{
		OutputDir:     "Instances",
		NumInstances:  1,
		MinWeights:    []float64{-10},
		MaxWeights:    []float64{10},
		GeneLengths:   []int{1000},
		Discrete:      true,
		Format:        wbs.PerInstanceOnly,
		PosPercentage: math.NaN(),
	}
	var format int
	var lengthStart, lengthEnd, lengthStep int

	flag.IntVar(&cfg.NumInstances, "num_instances", cfg.NumInstances, "Number of instances per parameter combination")
	flag.Func("min_weights", "A list of lower weight bounds, e.g. [-10,-25]", func(s string) error {
		v, err := parseList(s, parseFloat)
		cfg.MinWeights = v
		return err
	})
	flag.Func("max_weights", "A list of upper weight bounds, e.g. [10,25]", func(s string) error {
		v, err := parseList(s, parseFloat)
		cfg.MaxWeights = v
		return err
	})
	flag.Func("gene_lengths", "A list of binary string lengths, e.g. [500,1000]", func(s string) error {
		v, err := parseList(s, strconv.Atoi)
		cfg.GeneLengths = v
		return err
	})
	flag.StringVar(&cfg.OutputDir, "output_dir", cfg.OutputDir, "The destination directory, created if missing")
	flag.BoolVar(&cfg.Discrete, "discrete", cfg.Discrete, "Generate integer weights instead of two-decimal reals")
	flag.BoolVar(&cfg.NoZero, "no_zero", cfg.NoZero, "Re-sample until no weight equals zero")
	flag.Func("pos_percentage", "Exact percentage of positive weights, e.g. 70", func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		cfg.PosPercentage = v
		return err
	})
	flag.IntVar(&format, "format", 1, "0: overview file only, 1: one CSV per instance, 2: both")
	flag.IntVar(&lengthStart, "length_start", 0, "First gene length of a range sweep")
	flag.IntVar(&lengthEnd, "length_end", 0, "Last gene length of a range sweep (inclusive); enables the sweep")
	flag.IntVar(&lengthStep, "length_step", 250, "Gene length increment of a range sweep")

	flag.Parse()

	if format < 0 || format > 2 {
		fmt.Fprintln(os.Stderr, "Format must be 0, 1 or 2")
		os.Exit(1)
	}
	cfg.Format = wbs.OutputFormat(format)

	if lengthEnd > 0 {
		if lengthStart <= 0 || lengthStep <= 0 {
			fmt.Fprintln(os.Stderr, "A range sweep needs positive length_start and length_step")
			os.Exit(1)
		}
		cfg.GeneLengths = cfg.GeneLengths[:0]
		for length := lengthStart; length <= lengthEnd; length += lengthStep {
			cfg.GeneLengths = append(cfg.GeneLengths, length)
		}
	}

	if err := wbs.Generate(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
