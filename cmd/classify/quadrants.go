package main

import (
	"fmt"
	"io"

	"github.com/wippyai/fpgaio/fixed"
	"github.com/wippyai/fpgaio/pointnn"
	"github.com/wippyai/fpgaio/session"
)

type quadrant struct {
	name string
	x, y float64
}

var quadrants = []quadrant{
	{"Quadrant 1", 1.5, 2.5},
	{"Quadrant 2", -1.5, 2.5},
	{"Quadrant 3", -1.5, -2.5},
	{"Quadrant 4", 1.5, -2.5},
}

// runQuadrants classifies one point per quadrant. Each step clears the input,
// writes the point, reads it back and prints the classification beside the
// expected value.
func runQuadrants(w io.Writer, s *session.Session) error {
	in := pointnn.InputVector.Descriptor()
	out := pointnn.OutputClass.Descriptor()
	zero := pointnn.Point{}

	for _, q := range quadrants {
		p, err := pointnn.NewPoint(q.x, q.y)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "\n%s\n++++++++++\n\n", q.name)

		fmt.Fprintf(w, "Writing %s to %s\n", formatPoint(zero), in)
		if err := session.Write(s, pointnn.InputVector, zero); err != nil {
			return err
		}
		fmt.Fprintf(w, "Writing %s to %s\n", formatPoint(p), in)
		if err := session.Write(s, pointnn.InputVector, p); err != nil {
			return err
		}
		back, err := session.Read(s, pointnn.InputVector)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Read %s from %s\n", formatPoint(back), in)

		fmt.Fprintf(w, "\nReading result from %s\n==============\n\n", out)
		actual, err := session.Read(s, pointnn.OutputClass)
		if err != nil {
			return err
		}
		expected := pointnn.Expected(p)
		fmt.Fprintf(w, "Actual output:   %s\n", formatValue(actual))
		fmt.Fprintf(w, "Expected output: %s\n", formatValue(expected))
	}
	return nil
}

func formatPoint(p pointnn.Point) string {
	return fmt.Sprintf("(%s, %s) hex (%s, %s)", p.First, p.Second, p.First.Hex(), p.Second.Hex())
}

func formatValue(v fixed.I7F25) string {
	return fmt.Sprintf("%s hex %s", v, v.Hex())
}
