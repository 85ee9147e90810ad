package main

import (
	"bufio"
	"fmt"

	"github.com/beeselmane/zhdict"
	"github.com/beeselmane/zhdict/worksheet"
	"github.com/beeselmane/zhdict/xlsx"
	"github.com/spf13/cobra"
)

// Header labels of the two dictionary columns, as they appear in the
// dictionary spreadsheets this tool was written against.
const (
	headwordLabel   = "字詞名"
	definitionLabel = "釋義"
)

// queryCmd looks up dictionary entries interactively: each line read from
// stdin is matched against the headword column and the matching rows'
// definitions are printed.
func queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query [input.xlsx]",
		Short: "Interactively query a dictionary document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := zhdict.Open(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			return runQuery(cmd, doc)
		},
	}
}

func runQuery(cmd *cobra.Command, doc *xlsx.Document) error {
	out := cmd.OutOrStdout()
	errw := cmd.ErrOrStderr()

	header, _ := doc.Row(0) // the grid always has at least one row
	headwords, definitions := -1, -1

	for j, v := range header {
		s, ok := doc.Text(v)
		if !ok {
			fmt.Fprintf(errw, "column %d header is not a string\n", j)
			continue
		}
		fmt.Fprintf(out, "%d: %q\n", j, s)

		switch s {
		case headwordLabel:
			headwords = j
		case definitionLabel:
			definitions = j
		}
	}
	if headwords < 0 || definitions < 0 {
		return fmt.Errorf("document has no %q or %q column", headwordLabel, definitionLabel)
	}

	in := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprint(out, "Enter query: ")

	for in.Scan() {
		query := in.Text()
		fmt.Fprintf(out, "Looking for %q...\n", query)

		matches := 0
		for i, v := range doc.Column(headwords) {
			if v.Kind == worksheet.KindEmpty {
				continue
			}
			name, ok := doc.Text(v)
			if !ok {
				fmt.Fprintf(errw, "row %d headword is not a string\n", i)
				continue
			}
			if name != query {
				continue
			}

			matches++
			fmt.Fprintf(out, "Found %q at %d.\n", query, i+1)

			row, _ := doc.Row(i)
			if def, ok := doc.Text(row[definitions]); ok {
				fmt.Fprintf(out, "Definition %d:\n%s\n", matches, def)
			} else {
				fmt.Fprintf(errw, "row %d definition is not a string\n", i)
			}
		}
		if matches == 0 {
			fmt.Fprintln(out, "No records found.")
		}

		fmt.Fprint(out, "Enter query: ")
	}
	return in.Err()
}
