package main

import (
	"fmt"
	"io"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Games     int
	Seed      uint64
	MaxPieces int64

	// Results
	TotalTime      time.Duration
	TotalPieces    int64
	TotalLines     int64
	TotalHolds     int64
	TotalHardDrops int64
	ClearCounts    [5]int64
	Survival       Stats
	KindCounts     []KindCount
}

type KindCount struct {
	Kind  string
	Count int64
}

// Stats aggregates per-game survival times, in simulated seconds.
type Stats struct {
	Min     float64
	Max     float64
	Avg     float64
	Samples []float64
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total float64
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / float64(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Base Seed:** {{.Seed}}
- **Piece Cap per Game:** {{.MaxPieces}}

## Results
- **Wall Time:** {{.TotalTime}}
- **Pieces Locked:** {{.TotalPieces}}
- **Lines Cleared:** {{.TotalLines}}
- **Holds:** {{.TotalHolds}}
- **Hard Drops:** {{.TotalHardDrops}}
- **Clears:** {{index .ClearCounts 1}} singles, {{index .ClearCounts 2}} doubles, {{index .ClearCounts 3}} triples, {{index .ClearCounts 4}} tetrises
- **Survival (simulated):**
  - **Avg:** {{.Survival.Avg | secs}}
  - **Min:** {{.Survival.Min | secs}}
  - **Max:** {{.Survival.Max | secs}}

## Spawned Kinds
{{range .KindCounts}}- **{{.Kind}}:** {{.Count}}
{{end}}`

	fm := template.FuncMap{
		"secs": func(s float64) string {
			return fmt.Sprintf("%.1fs", s)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
