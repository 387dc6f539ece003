package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"wbs_generator/src/wbs"
)

func report(inst *wbs.Instance, name string, sol *wbs.Solution) {
	fmt.Printf("%s solution:\n%v\n", name, sol)
	fmt.Printf("Gap to stored optimum: %v\n", inst.MaxFitness-sol.Fitness)
}

func main() {
	var solveGreedy, solveGenetic, solveHighs bool
	var stallRounds int
	var paths []string

	flag.Func("inst", "a list of instance file paths, separated by a whitespace", func(s string) error {
		paths = strings.Fields(s)
		return nil
	})
	flag.BoolVar(&solveGreedy, "greedy", false, "Solve with the greedy baseline")
	flag.BoolVar(&solveGenetic, "genetic", false, "Solve with the genetic-algorithm baseline")
	flag.BoolVar(&solveHighs, "highs", false, "Solve exactly using the HiGHS solver")
	flag.IntVar(&stallRounds, "stall_rounds", 50, "Stop the genetic algorithm after this many rounds without improvement")

	flag.Parse()

	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Must specify at least a path")
		os.Exit(1)
	}
	if !solveGreedy && !solveGenetic && !solveHighs {
		fmt.Fprintln(os.Stderr, "Must specify a solving algorithm")
		os.Exit(1)
	}

	for _, p := range paths {
		inst, err := wbs.LoadInstance(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error for instance \"%v\": %v. Skipping...\n", p, err)
			continue
		}
		fmt.Printf("Instance %v:\n%v", p, inst)

		if solveGreedy {
			report(inst, "Greedy", inst.SolveGreedy())
		}
		if solveGenetic {
			report(inst, "Genetic algorithm", inst.SolveGenetic(stallRounds))
		}
		if solveHighs {
			sol, err := inst.SolveHighs()
			if err != nil {
				fmt.Fprintf(os.Stderr, "An error occured while solving with HiGHS instance \"%v\": %v\n", p, err)
			} else {
				report(inst, "HiGHS", sol)
			}
		}
		fmt.Println()
	}
}
