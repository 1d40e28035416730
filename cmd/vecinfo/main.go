// Command vecinfo prints how the vector kernels are configured on this
// machine: the scalar build target, detected CPU features and the batch
// kernel that will be used.
//
// Usage:
//
//	vecinfo [flags]
//
// Examples:
//
//	vecinfo
//	vecinfo -list
//	vecinfo -generic -verify 4096
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vec/batch"
	"github.com/cwbudde/algo-vec/internal/cpu"
	"github.com/cwbudde/algo-vec/internal/shim"
	"github.com/cwbudde/algo-vec/vec"
)

func main() {
	list := flag.Bool("list", false, "list every registered batch kernel")
	generic := flag.Bool("generic", false, "ignore CPU features and select the generic kernel")
	verify := flag.Int("verify", 0, "check the selected kernel against per-vector dot products on `n` vectors")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU features and the batch kernel selected for them.\n")
		fmt.Fprintf(os.Stderr, "Setting %s=1 has the same effect as -generic.\n\n", cpu.ForceGenericEnv)
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -list\n")
		fmt.Fprintf(os.Stderr, "  vecinfo -generic -verify 4096\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	if *generic {
		f := cpu.DetectFeatures()
		f.ForceGeneric = true
		cpu.SetForcedFeatures(f)
	}

	if err := printSummary(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		if err := printKernels(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *verify > 0 {
		if bad := verifyDot3(*verify); bad > 0 {
			fmt.Fprintf(os.Stderr, "error: %d of %d dot products differ from the per-vector result\n", bad, *verify)
			os.Exit(1)
		}
		fmt.Printf("verified %d dot products\n", *verify)
	}
}

func printSummary(w io.Writer) error {
	f := cpu.DetectFeatures()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		key   string
		value any
	}{
		{"Architecture", f.Architecture},
		{"Scalar target", shim.Target},
		{"SSE2", f.HasSSE2},
		{"AVX2", f.HasAVX2},
		{"NEON", f.HasNEON},
		{"FMA", f.HasFMA},
		{"Force generic", f.ForceGeneric},
		{"Batch kernel", batch.Implementation()},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%v\n", r.key, r.value); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return tw.Flush()
}

func printKernels(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\nKernel\tLevel\tPriority\tSupported\n------\t-----\t--------\t---------\n"); err != nil {
		return fmt.Errorf("failed to write kernel header: %w", err)
	}
	for _, k := range batch.Kernels() {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%v\n", k.Name, k.Level, k.Priority, k.Supported); err != nil {
			return fmt.Errorf("failed to write kernel row: %w", err)
		}
	}
	return tw.Flush()
}

// verifyDot3 runs the selected kernel over n vectors with small integer
// components, where every kernel must match vec.Float3.Dot exactly, and
// returns the number of mismatches.
func verifyDot3(n int) int {
	a := make([]vec.Float3, n)
	b := make([]vec.Float3, n)
	for i := range a {
		k := float32(i%97) - 48
		a[i] = vec.MakeFloat3(k, k/2, 1-k)
		b[i] = vec.MakeFloat3(3-k, k, k/4)
	}

	dst := make([]float32, n)
	batch.Dot3(dst, a, b)

	bad := 0
	for i := range dst {
		if dst[i] != a[i].Dot(b[i]) {
			bad++
		}
	}
	return bad
}
