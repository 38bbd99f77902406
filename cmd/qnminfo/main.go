// Command qnminfo prints Kerr quasinormal-mode frequencies and damping
// times.
//
// Usage:
//
//	qnminfo [flags] [lmn ...]
//
// Modes are given as three-digit strings, e.g. 220 for the fundamental
// l=2, m=2 mode. Without arguments it prints every bundled mode.
//
// Examples:
//
//	qnminfo -mass 65 -spin 0.7
//	qnminfo -mass 65 -spin 0.7 220 221 330
//	qnminfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-qnm"
	"github.com/cwbudde/algo-qnm/table"
)

func main() {
	mass := flag.Float64("mass", 1, "black hole mass in solar masses")
	spin := flag.Float64("spin", 0, "dimensionless spin in [-0.9997, 0.9997]")
	list := flag.Bool("list", false, "list bundled modes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qnminfo [flags] [lmn ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints Kerr quasinormal-mode frequencies and damping times.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every bundled mode.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  qnminfo -mass 65 -spin 0.7\n")
		fmt.Fprintf(os.Stderr, "  qnminfo -mass 65 -spin 0.7 220 221 330\n")
		fmt.Fprintf(os.Stderr, "  qnminfo -list\n")
	}
	flag.Parse()

	bundled, err := table.Modes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		for _, id := range bundled {
			fmt.Printf("%d%d%d\n", id.L, id.M, id.N)
		}
		return
	}

	modes := bundled
	if args := flag.Args(); len(args) > 0 {
		modes = resolveModes(args)
	}
	if len(modes) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid modes requested\n")
		os.Exit(1)
	}

	printModes(modes, *mass, *spin)
}

func resolveModes(args []string) []table.ModeID {
	var result []table.ModeID
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if len(arg) != 3 || !isDigits(arg) {
			fmt.Fprintf(os.Stderr, "warning: malformed mode %q, want three digits like 220\n", arg)
			continue
		}
		result = append(result, table.ModeID{
			L: int(arg[0] - '0'),
			M: int(arg[1] - '0'),
			N: int(arg[2] - '0'),
		})
	}
	return result
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func printModes(modes []table.ModeID, mass, spin float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Mode\tf [Hz]\ttau [ms]\tQ\n")
	fmt.Fprintf(tw, "----\t------\t--------\t-\n")

	failed := false
	for _, id := range modes {
		f, err := qnm.Frequency(mass, spin, id.L, id.M, id.N)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			failed = true
			continue
		}
		tau, err := qnm.DampingTime(mass, spin, id.L, id.M, id.N)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			failed = true
			continue
		}

		q := math.Pi * f * tau
		fmt.Fprintf(tw, "%d%d%d\t%.2f\t%.4f\t%.2f\n", id.L, id.M, id.N, f, tau*1e3, q)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}
