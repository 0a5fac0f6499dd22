// Command wasserstein computes the Wasserstein distance between two samples
// stored in CSV files.
//
// Each row holds one observation, either "value" or "value,weight".
// Files with a single column are treated as uniformly weighted.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nozzle/wasserstein"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with the given arguments and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// Parse command-line flags
	fs := flag.NewFlagSet("wasserstein", flag.ContinueOnError)
	fs.SetOutput(stderr)
	uFile := fs.String("u", "", "CSV file with the first sample (required)")
	vFile := fs.String("v", "", "CSV file with the second sample (required)")
	p := fs.Float64("p", 1.0, "Order of the distance")
	verbose := fs.Bool("verbose", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *uFile == "" || *vFile == "" {
		fmt.Fprintln(stderr, "Error: -u and -v flags are required")
		fs.Usage()
		return 1
	}

	u, err := loadSample(*uFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading %s: %v\n", *uFile, err)
		return 1
	}
	v, err := loadSample(*vFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading %s: %v\n", *vFile, err)
		return 1
	}

	if *verbose {
		fmt.Fprintf(stdout, "Loaded %d observations from %s (weighted: %t)\n", len(u.Values), *uFile, u.Weights != nil)
		fmt.Fprintf(stdout, "Loaded %d observations from %s (weighted: %t)\n", len(v.Values), *vFile, v.Weights != nil)
	}

	d, err := wasserstein.Distance(*p, u, v)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, strconv.FormatFloat(d, 'g', -1, 64))
	return 0
}

// loadSample loads a sample from a CSV file (no header).
func loadSample(filename string) (wasserstein.Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return wasserstein.Sample{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return wasserstein.Sample{}, err
	}

	if len(records) == 0 {
		return wasserstein.Sample{}, fmt.Errorf("empty file")
	}

	cols := len(records[0])
	if cols != 1 && cols != 2 {
		return wasserstein.Sample{}, fmt.Errorf("expected 1 or 2 columns, got %d", cols)
	}

	values := make([]float64, len(records))
	var weights []float64
	if cols == 2 {
		weights = make([]float64, len(records))
	}

	for i, record := range records {
		f, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return wasserstein.Sample{}, fmt.Errorf("row %d, col 0: %v", i, err)
		}
		values[i] = f

		if cols == 2 {
			w, err := strconv.ParseFloat(record[1], 64)
			if err != nil {
				return wasserstein.Sample{}, fmt.Errorf("row %d, col 1: %v", i, err)
			}
			weights[i] = w
		}
	}

	return wasserstein.NewSample(values, weights), nil
}
