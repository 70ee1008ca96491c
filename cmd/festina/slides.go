package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Kronotime-SAS/Festina/internal/domain/entities/metaobject"
	"github.com/Kronotime-SAS/Festina/internal/domain/services/slides"
)

func newSlidesCommand() *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "slides [file]",
		Short: "Extract slider banners from a saved metaobject query result",
		Long: "Reads a metaobject query result (either the full GraphQL response with a\n" +
			"top-level \"data\" object, or the data object alone) from a file or stdin\n" +
			"and prints the extracted slides as JSON.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runSlides(in, cmd.OutOrStdout(), compact)
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "print the slides on a single line")
	return cmd
}

// queryDocument accepts both {"data":{"metaobject":...}} and {"metaobject":...}.
type queryDocument struct {
	Data       *metaobject.QueryResult `json:"data"`
	Metaobject *metaobject.Metaobject  `json:"metaobject"`
}

func decodeQueryResult(r io.Reader) (*metaobject.QueryResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	var doc queryDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode query result: %w", err)
	}
	if doc.Data != nil {
		return doc.Data, nil
	}
	return &metaobject.QueryResult{Metaobject: doc.Metaobject}, nil
}

func runSlides(in io.Reader, out io.Writer, compact bool) error {
	result, err := decodeQueryResult(in)
	if err != nil {
		return err
	}

	extracted, err := slides.ExtractSlides(result)
	if err != nil {
		return err
	}

	var encoded []byte
	if compact {
		encoded, err = json.Marshal(extracted)
	} else {
		encoded, err = json.MarshalIndent(extracted, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode slides: %w", err)
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}
