package publisher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/screa/vanity-address-miner/internal/output"
	"github.com/screa/vanity-address-miner/pkg/types"
)

const (
	banner     = "---------------------------------------------------------------------------------------"
	importHint = "Import this private key into an ethereum wallet in order to use the address."
	keyWarning = "Keep the private key secret: anyone who has it controls the address."
)

// Device is the output collaborator: it styles and writes text
type Device interface {
	Paint(c output.Color, s string) string
	Write(s string) error
}

// Searcher runs one round. A nil result with a nil error means the search
// was stopped.
type Searcher interface {
	Mine() (*types.Result, error)
}

// Publisher formats search output and drives the round loop
type Publisher struct {
	out    Device
	quiet  bool
	stream bool
}

// New creates a publisher. In quiet mode only result lines are written.
func New(out Device, quiet, stream bool) *Publisher {
	return &Publisher{
		out:    out,
		quiet:  quiet,
		stream: stream,
	}
}

type segment struct {
	color output.Color
	text  string
}

// line renders segments followed by a newline. Decorative lines render
// to "" in quiet mode.
func (p *Publisher) line(decorative bool, segs ...segment) string {
	if decorative && p.quiet {
		return ""
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(p.out.Paint(s.color, s.text))
	}
	b.WriteByte('\n')
	return b.String()
}

func (p *Publisher) write(parts ...string) error {
	s := strings.Join(parts, "")
	if s == "" {
		return nil
	}
	if err := p.out.Write(s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// EmptyPatterns returns the error shown when no pattern survived
// compilation. It is printed even in quiet mode.
func (p *Publisher) EmptyPatterns() string {
	return p.line(false, segment{output.Red, "Please, provide at least one valid pattern."})
}

// Header returns the banner and pattern summary
func (p *Publisher) Header(patterns int) string {
	lead, noun := "Looking for an address matching ", " pattern"
	if patterns > 1 {
		lead, noun = "Looking for an address matching any of ", " patterns"
	}
	return p.line(true, segment{output.Plain, banner}) +
		p.line(true,
			segment{output.Plain, lead},
			segment{output.Cyan, strconv.Itoa(patterns)},
			segment{output.Plain, noun},
		) +
		p.line(true, segment{output.Plain, banner})
}

// RateLine formats a throughput sample
func (p *Publisher) RateLine(count uint64) string {
	return p.line(true,
		segment{output.Cyan, strconv.FormatUint(count, 10)},
		segment{output.Plain, " addresses / second"},
	)
}

// ResultBlock formats a found candidate. Quiet mode yields the single line
// "0x<address> <private key>".
func (p *Publisher) ResultBlock(c types.Candidate) string {
	if p.quiet {
		return QuietLine(c)
	}
	return p.line(true, segment{output.Plain, banner}) +
		p.line(true, segment{output.Plain, "Found address: "}, segment{output.Yellow, "0x" + c.Address}) +
		p.line(true, segment{output.Plain, "Generated private key: "}, segment{output.Red, c.PrivateKey}) +
		p.line(true, segment{output.Plain, importHint}) +
		p.line(true, segment{output.Green, keyWarning}) +
		p.line(true, segment{output.Plain, banner})
}

// QuietLine formats a candidate as "0x<address> <private key>\n"
func QuietLine(c types.Candidate) string {
	return "0x" + c.Address + " " + c.PrivateKey + "\n"
}

// WriteHeader writes the banner and pattern summary
func (p *Publisher) WriteHeader(patterns int) error {
	return p.write(p.Header(patterns))
}

// Publish writes the result of a round
func (p *Publisher) Publish(r *types.Result) error {
	return p.write(p.ResultBlock(r.Candidate))
}

// Run executes rounds until one result is published, or forever in stream
// mode. It returns nil when the searcher is stopped.
func (p *Publisher) Run(s Searcher) error {
	for {
		result, err := s.Mine()
		if err != nil {
			return err
		}
		if result == nil {
			return nil
		}
		if err := p.Publish(result); err != nil {
			return err
		}
		if !p.stream {
			return nil
		}
	}
}
