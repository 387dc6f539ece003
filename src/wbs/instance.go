package wbs

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

func errorCoalesce(args ...error) error {
	for _, e := range args {
		if e != nil {
			return e
		}
	}
	return nil
}

func scanField(scanner *bufio.Scanner, key string) (string, error) {
	if !scanner.Scan() {
		return "", fmt.Errorf("missing %q line", key)
	}
	prefix := key + ","
	line := scanner.Text()
	if !strings.HasPrefix(line, prefix) {
		return "", fmt.Errorf("expected %q line, got %q", key, line)
	}
	return strings.TrimPrefix(line, prefix), nil
}

func (inst *Instance) parseHeader(scanner *bufio.Scanner) error {
	fitness, err := scanField(scanner, "Max Fitness")
	if err != nil {
		return err
	}
	lengthStr, err := scanField(scanner, "String Length")
	if err != nil {
		return err
	}
	minStr, err := scanField(scanner, "Min Weight")
	if err != nil {
		return err
	}
	maxStr, err := scanField(scanner, "Max Weight")
	if err != nil {
		return err
	}
	discreteStr, err := scanField(scanner, "Discrete")
	if err != nil {
		return err
	}
	noZeroStr, err := scanField(scanner, "No Zero")
	if err != nil {
		return err
	}
	posPctStr, err := scanField(scanner, "Pos Percentage")
	if err != nil {
		return err
	}

	inst.MaxFitness, err = strconv.ParseFloat(fitness, 64)
	if err != nil {
		return fmt.Errorf("error while parsing max fitness: %v", err)
	}
	inst.Length, err = strconv.Atoi(lengthStr)
	if err != nil {
		return fmt.Errorf("error while parsing string length: %v", err)
	}
	inst.MinWeight, err = strconv.ParseFloat(minStr, 64)
	if err != nil {
		return fmt.Errorf("error while parsing min weight: %v", err)
	}
	inst.MaxWeight, err = strconv.ParseFloat(maxStr, 64)
	if err != nil {
		return fmt.Errorf("error while parsing max weight: %v", err)
	}
	inst.Discrete, err = strconv.ParseBool(discreteStr)
	if err != nil {
		return fmt.Errorf("error while parsing discrete flag: %v", err)
	}
	inst.NoZero, err = strconv.ParseBool(noZeroStr)
	if err != nil {
		return fmt.Errorf("error while parsing no-zero flag: %v", err)
	}
	if posPctStr == "" {
		inst.PosPercentage = math.NaN()
	} else {
		inst.PosPercentage, err = strconv.ParseFloat(posPctStr, 64)
		if err != nil {
			return fmt.Errorf("error while parsing positive percentage: %v", err)
		}
	}
	return nil
}

func (inst *Instance) parseGenes(scanner *bufio.Scanner) error {
	row, err := scanField(scanner, "Genes")
	if err != nil {
		return err
	}
	bits := strings.Split(row, ",")
	if len(bits) != inst.Length {
		return fmt.Errorf("expected %d genes, got %d", inst.Length, len(bits))
	}
	inst.Gene = mat.NewVecDense(inst.Length, nil)
	for i, tok := range bits {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return fmt.Errorf("error while parsing gene %d: %v", i, err)
		}
		inst.Gene.SetVec(i, float64(v))
	}
	return nil
}

func (inst *Instance) parseWeights(scanner *bufio.Scanner) error {
	row, err := scanField(scanner, "Weights")
	if err != nil {
		return err
	}
	values := strings.Split(row, ",")
	if len(values) != inst.Length {
		return fmt.Errorf("expected %d weights, got %d", inst.Length, len(values))
	}
	inst.Weights = mat.NewVecDense(inst.Length, nil)
	for i, tok := range values {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("error while parsing weight %d: %v", i, err)
		}
		inst.Weights.SetVec(i, v)
	}
	return nil
}

// LoadInstance reads a per-instance CSV written by Generate back into an
// Instance.
func LoadInstance(filename string) (*Instance, error) {
	inst := new(Instance)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 64*1024*1024)
	err = errorCoalesce(
		inst.parseHeader(scanner),
		inst.parseGenes(scanner),
		inst.parseWeights(scanner),
	)
	if err != nil {
		return nil, err
	}
	return inst, nil
}
