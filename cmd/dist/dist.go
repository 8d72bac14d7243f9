// dist reads newline-separated numbers from stdin and describes their
// distribution in a single pass, without holding the input in memory.
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/SWW13/average/stats"
)

var percentiles = []float64{0.01, 0.05, 0.25, 0.50, 0.75, 0.95, 0.99}

func main() {
	var ss stats.StreamStats
	quantiles := make([]*stats.Quantile, len(percentiles))
	for i, p := range percentiles {
		quantiles[i] = stats.NewQuantile(p)
	}
	readInput(os.Stdin, func(x float64) {
		ss.Add(x)
		for _, q := range quantiles {
			q.Add(x)
		}
	})

	fmt.Printf("N %d  sum %.6g  mean %.6g", ss.Count(), ss.Sum(), ss.Mean())
	fmt.Printf("  std dev %.6g  variance %.6g\n", ss.StdDev(), ss.SampleVariance())
	if skew := ss.Skewness(); !math.IsNaN(skew) {
		fmt.Printf("skewness %.6g  excess kurtosis %.6g\n", skew, ss.Kurtosis())
	}
	fmt.Println()

	// Extrema and estimated quantiles.
	fmt.Printf("%8s %.6g\n", "min", ss.Min())
	labels := map[float64]string{0.50: "median"}
	for i, q := range quantiles {
		label, ok := labels[percentiles[i]]
		if !ok {
			label = fmt.Sprintf("%g%%ile", percentiles[i]*100)
		}
		fmt.Printf("%8s %.6g\n", label, q.Value())
	}
	fmt.Printf("%8s %.6g\n", "max", ss.Max())
}

func readInput(r io.Reader, add func(float64)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		add(value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
