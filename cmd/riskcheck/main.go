// riskcheck evaluates instruction text for comprehension risk from the command
// line. It uses the evaluator directly and needs no web stack.
//
// Usage:
//
//	riskcheck evaluate "Go to settings and reset your password."
//	riskcheck evaluate -f steps.txt -f other.txt --format json
//	cat steps.txt | riskcheck evaluate
//	riskcheck levels
//	riskcheck smoke
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
