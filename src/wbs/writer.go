package wbs

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (inst *Instance) formatWeight(w float64) string {
	if inst.Discrete {
		return strconv.Itoa(int(w))
	}
	return formatNumber(w)
}

func (inst *Instance) bit(i int) int {
	if inst.Gene.AtVec(i) > 0.5 {
		return 1
	}
	return 0
}

func (inst *Instance) geneFields() []string {
	fields := make([]string, inst.Length)
	for i := range fields {
		fields[i] = strconv.Itoa(inst.bit(i))
	}
	return fields
}

func (inst *Instance) weightFields() []string {
	fields := make([]string, inst.Length)
	for i := range fields {
		fields[i] = inst.formatWeight(inst.Weights.AtVec(i))
	}
	return fields
}

// nextFreeIndex returns the first i such that instance_i.csv does not exist
// in dir.
func nextFreeIndex(dir string) int {
	i := 0
	for {
		if _, err := os.Stat(filepath.Join(dir, fmt.Sprintf("instance_%d.csv", i))); os.IsNotExist(err) {
			return i
		}
		i++
	}
}

// writeCSV persists the instance as instance_<i>.csv in dir, picking the
// lowest free index, and returns the written path.
func (inst *Instance) writeCSV(dir string) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("instance_%d.csv", nextFreeIndex(dir)))

	posPct := ""
	if !math.IsNaN(inst.PosPercentage) {
		posPct = formatNumber(inst.PosPercentage)
	}

	s := new(strings.Builder)
	fmt.Fprintf(s, "Max Fitness,%s\n", formatNumber(inst.MaxFitness))
	fmt.Fprintf(s, "String Length,%d\n", inst.Length)
	fmt.Fprintf(s, "Min Weight,%s\n", formatNumber(inst.MinWeight))
	fmt.Fprintf(s, "Max Weight,%s\n", formatNumber(inst.MaxWeight))
	fmt.Fprintf(s, "Discrete,%v\n", inst.Discrete)
	fmt.Fprintf(s, "No Zero,%v\n", inst.NoZero)
	fmt.Fprintf(s, "Pos Percentage,%s\n", posPct)
	fmt.Fprintf(s, "Genes,%s\n", strings.Join(inst.geneFields(), ","))
	fmt.Fprintf(s, "Weights,%s\n", strings.Join(inst.weightFields(), ","))

	return path, os.WriteFile(path, []byte(s.String()), 0666)
}

// overviewPath names the aggregate file of one sweep cell.
func overviewPath(dir string, length int, minW, maxW float64, discrete bool) string {
	repr := "C"
	if discrete {
		repr = "D"
	}
	return filepath.Join(dir, fmt.Sprintf(
		"Instance_length_%d_weights_%s_to_%s_%s.txt",
		length, formatNumber(minW), formatNumber(maxW), repr,
	))
}

// appendOverview writes the instance's gene and weight rows as one overview
// block.
func (inst *Instance) appendOverview(w io.Writer) error {
	_, err := fmt.Fprintf(
		w, "Genes:   %s\nWeights: %s\n\n",
		strings.Join(inst.geneFields(), " "),
		strings.Join(inst.weightFields(), " "),
	)
	return err
}
