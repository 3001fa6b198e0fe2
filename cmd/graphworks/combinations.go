package main

import (
	"bufio"
	"strconv"

	"github.com/go-kit/log/level"

	"github.com/katalvlaran/graphworks/combin"
)

type combinationsCmd struct {
	N int `arg:"" help:"Universe size; indices run 0..N-1."`
	K int `arg:"" help:"Combination size."`
}

// Run prints one combination per line, indices separated by spaces.
// The single empty combination of K=0 prints nothing.
func (c *combinationsCmd) Run(rc *runContext) error {
	e, err := combin.New(c.N, c.K)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(rc.stdout)
	var line []byte
	for combo := range e.All() {
		if len(combo) == 0 {
			continue
		}
		line = line[:0]
		for i, x := range combo {
			if i > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(x), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	level.Debug(rc.logger).Log("msg", "combinations complete", "n", c.N, "k", c.K, "count", e.Emitted())

	return bw.Flush()
}
