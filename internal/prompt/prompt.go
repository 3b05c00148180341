// Package prompt reads benchmark input sizes interactively.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gookit/color"

	"github.com/dbsmedya/sortbench/internal/config"
)

// Messages printed by the prompt loop.
const (
	Question         = "Enter the number of records to analyze (0 to finish): "
	MsgNegative      = "Input size cannot be negative!"
	MsgNotANumber    = "Input must be a number!"
	MsgUsingDefaults = "Using default sizes..."
)

// Prompter asks for input sizes until the user enters 0 or input ends.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	color   bool
}

// New creates a Prompter reading lines from in and writing prompts to out.
func New(in io.Reader, out io.Writer, useColor bool) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		color:   useColor,
	}
}

// Collect reads sizes one per line. Negative and non-numeric entries print a
// message and are asked again without limit. When nothing was entered the
// default sizes are returned. The result is sorted ascending.
func (p *Prompter) Collect() ([]int, error) {
	var sizes []int

	for {
		fmt.Fprint(p.out, Question)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return nil, fmt.Errorf("failed to read input: %w", err)
			}
			fmt.Fprintln(p.out)
			break
		}

		n, err := strconv.Atoi(strings.TrimSpace(p.scanner.Text()))
		if err != nil {
			p.warn(MsgNotANumber)
			continue
		}
		if n == 0 {
			break
		}
		if n < 0 {
			p.warn(MsgNegative)
			continue
		}
		sizes = append(sizes, n)
	}

	if len(sizes) == 0 {
		fmt.Fprintln(p.out, MsgUsingDefaults)
		sizes = config.DefaultSizes()
	}

	sort.Ints(sizes)
	return sizes, nil
}

func (p *Prompter) warn(msg string) {
	if p.color {
		msg = color.Red.Sprint(msg)
	}
	fmt.Fprintln(p.out, msg)
}
