// Package main provides the zhdict command line tool.
package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"github.com/beeselmane/zhdict"
	"github.com/beeselmane/zhdict/worksheet"
	"github.com/beeselmane/zhdict/xlsx"
	"github.com/beeselmane/zhdict/xmltree"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:     "zhdict",
		Short:   "Inspect and query .xlsx dictionary documents",
		Version: zhdict.Version,
	}
	root.AddCommand(dumpCmd(), xmlCmd(), zxmlCmd(), queryCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// dumpCmd prints a document's grid with one fixed-width column per sheet
// column, labelled C### across and R### down.
func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [input.xlsx]",
		Short: "Print the cell grid of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := zhdict.Open(args[0])
			if err != nil {
				return err
			}
			defer doc.Close()

			dumpGrid(cmd.OutOrStdout(), doc)
			return nil
		},
	}
}

func dumpGrid(w io.Writer, doc *xlsx.Document) {
	fmt.Fprintf(w, "%4s", "")
	for j := range doc.Cols() {
		fmt.Fprintf(w, "%13s%03d", "C", j)
	}
	fmt.Fprintln(w)

	for i, row := range doc.EachRow() {
		fmt.Fprintf(w, "R%03d", i)
		for _, v := range row {
			switch v.Kind {
			case worksheet.KindShared, worksheet.KindLiteral:
				s, _ := doc.Text(v)
				fmt.Fprintf(w, "%16s", s)
			case worksheet.KindInt:
				fmt.Fprintf(w, "%16d", v.Int)
			case worksheet.KindFloat:
				fmt.Fprintf(w, "%16f", v.Float)
			default:
				fmt.Fprintf(w, "%16s", "")
			}
		}
		fmt.Fprintln(w)
	}
}

// xmlCmd parses an XML file and prints its element tree.
func xmlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xml [input.xml]",
		Short: "Print the element tree of an XML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			root, err := xmltree.Parse(f)
			if err != nil {
				return err
			}
			root.Dump(cmd.OutOrStdout())
			return nil
		},
	}
}

// zxmlCmd parses an XML member of a ZIP archive and prints its element
// tree. Useful for poking at the parts of an .xlsx package directly.
func zxmlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zxml [archive.zip] [member.xml]",
		Short: "Print the element tree of an XML member of a ZIP archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			zr, err := zip.OpenReader(args[0])
			if err != nil {
				return err
			}
			defer zr.Close()

			f, err := zr.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			root, err := xmltree.Parse(f)
			if err != nil {
				return err
			}
			root.Dump(cmd.OutOrStdout())
			return nil
		},
	}
}
