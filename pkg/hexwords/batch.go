package hexwords

import (
	"fmt"
	"io"

	"github.com/bft-labs/hexwords/internal/domain"
	"github.com/bft-labs/hexwords/internal/ports"
	"github.com/bft-labs/hexwords/pkg/log"
)

// Result is the outcome of converting one input.
type Result struct {
	Input string
	Stats Stats
	Err   error
}

// Report collects the results of a batch run.
type Report struct {
	Results []Result
	Failed  int
}

// OK reports whether every input converted without error.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Err returns domain.ErrInputFailed if any input failed, nil otherwise.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", domain.ErrInputFailed, r.Failed, len(r.Results))
}

// ConvertAll converts inputs in order into w. A failed input is logged and
// counted; the remaining inputs are still converted. An empty inputs list
// reads standard input.
func (c *Converter) ConvertAll(inputs []string, w io.Writer) Report {
	if len(inputs) == 0 {
		inputs = []string{ports.StdinName}
	}
	rep := Report{Results: make([]Result, 0, len(inputs))}
	for _, in := range inputs {
		st, err := c.convertInput(in, w)
		rep.Results = append(rep.Results, Result{Input: in, Stats: st, Err: err})
		if err != nil {
			rep.Failed++
			c.opts.logger.Error(c.opts.name, log.String("input", in), log.Err(err))
			continue
		}
		c.opts.logger.Debug("converted",
			log.String("input", in),
			log.Int64("bytes", st.Bytes),
			log.Int("words", st.Words),
			log.Int("print_words", st.PrintWords),
			log.Int("lines", st.Lines),
		)
	}
	return rep
}

func (c *Converter) convertInput(name string, w io.Writer) (Stats, error) {
	src, err := c.opts.opener.Open(name)
	if err != nil {
		return Stats{}, fmt.Errorf("open: %w", err)
	}
	defer src.Close()
	return c.Convert(src, w)
}
