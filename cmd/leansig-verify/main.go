// leansig-verify reads a host envelope file, decodes the batch it carries,
// and verifies it.
package main

import (
	"fmt"
	"os"

	"github.com/certen/leansig-verifier/pkg/report"
	"github.com/certen/leansig-verifier/pkg/wire"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: leansig-verify <envelope.json>")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading envelope file: %w", err)
	}

	payload, err := wire.UnwrapEnvelope(raw)
	if err != nil {
		return fmt.Errorf("unwrapping envelope: %w", err)
	}

	batch, err := wire.Decode(payload)
	if err != nil {
		return fmt.Errorf("decoding batch: %w", err)
	}

	run := report.NewRun(batch)
	fmt.Println(run.String())

	if !run.AllSignaturesValid {
		os.Exit(1)
	}
	return nil
}
