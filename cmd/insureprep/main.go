// Command insureprep prepares the insurance charges dataset for regression:
// it cleans the source CSV and writes the feature matrix, the log(charges)
// target and the cleaned table.
//
// Example:
//
//	insureprep prepare insurance.csv --interaction --out ./prepared --plot
//	insureprep describe insurance.csv
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
