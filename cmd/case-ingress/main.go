// case-ingress cleans the two municipal call-center case-log exports.
//
// Usage:
//
//	case-ingress            # clean both fixed tables and print the summary
//	case-ingress audit      # survey the raw tables for quality issues
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; environment defaults cover everything.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
