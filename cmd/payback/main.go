// Command payback minimizes the number of transactions needed to settle
// debts in a group, reading either vertex-weighted (identifier,balance) or
// edge-weighted (from,to,weight) rows from a CSV file or stdin (spec §6).
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-payback/payback"
	"github.com/go-payback/payback/balance"
	"github.com/go-payback/payback/normalize"
)

var methodsByName = map[string]payback.Method{
	payback.ApproxStarExpand.String():              payback.ApproxStarExpand,
	payback.ApproxGreedySatisfaction.String():       payback.ApproxGreedySatisfaction,
	payback.PartitioningStarExpand.String():         payback.PartitioningStarExpand,
	payback.PartitioningGreedySatisfaction.String(): payback.PartitioningGreedySatisfaction,
}

func main() {
	root := &cobra.Command{
		Use:          "payback <FILE> [OUTPUT] [METHOD]",
		Short:        "Minimize the number of transactions needed to settle group debts",
		Args:         cobra.RangeArgs(1, 3),
		SilenceUsage: true,
		RunE:         run,
	}

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	file := args[0]

	output := "transactions"
	if len(args) > 1 {
		output = args[1]
	}
	if output != "transactions" && output != "dot" {
		return fmt.Errorf("%w: unknown output %q", normalize.ErrInvalidInput, output)
	}

	methodArg := payback.ApproxStarExpand.String()
	if len(args) > 2 {
		methodArg = args[2]
	}
	method, ok := methodsByName[methodArg]
	if !ok {
		return fmt.Errorf("%w: unknown method %q", normalize.ErrInvalidInput, methodArg)
	}

	r, closeFn, err := openInput(file)
	if err != nil {
		return err
	}
	defer closeFn()

	model, err := parseCSV(r)
	if err != nil {
		return err
	}

	sol, err := payback.Solve(model, method)
	if err != nil {
		return err
	}

	switch output {
	case "dot":
		dot, err := payback.SolutionToDOT(model, sol)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dot)
	default:
		text, err := payback.PrintSolution(model, sol)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
	}

	return nil
}

// openInput opens file for reading, or os.Stdin when file is "-".
func openInput(file string) (io.Reader, func(), error) {
	if file == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { f.Close() }, nil
}

// parseCSV auto-detects the two supported CSV shapes by column count: two
// columns is vertex-weighted (identifier,balance), three columns is
// edge-weighted (from,to,weight). A file mixing row widths is rejected.
func parseCSV(r io.Reader) (*balance.Model, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	cols := -1
	var balRows []balance.Entry
	var edgeRows []normalize.Edge

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if cols == -1 {
			cols = len(row)
		} else if cols != len(row) {
			return nil, fmt.Errorf("%w: mixed row widths", normalize.ErrInvalidInput)
		}

		switch cols {
		case 2:
			bal, err := strconv.ParseInt(row[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", normalize.ErrInvalidInput, err)
			}
			balRows = append(balRows, balance.Entry{ID: row[0], Balance: bal})
		case 3:
			w, err := strconv.ParseInt(row[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", normalize.ErrInvalidInput, err)
			}
			edgeRows = append(edgeRows, normalize.Edge{From: row[0], To: row[1], Weight: w})
		default:
			return nil, fmt.Errorf("%w: expected 2 or 3 columns, got %d", normalize.ErrInvalidInput, cols)
		}
	}

	if cols == 2 {
		return normalize.FromBalances(balRows)
	}

	return normalize.FromEdges(edgeRows)
}
