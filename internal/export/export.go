// Package export renders stored runs to JSON and SVG for downstream
// tooling.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/stepperanch/projsim/internal/geom"
	"github.com/stepperanch/projsim/internal/storage"
)

type Data struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Integrator  string             `json:"integrator"`
	Dt          float64            `json:"dt"`
	MaxTime     float64            `json:"max_time"`
	Termination string             `json:"termination"`
	Steps       int                `json:"steps"`
	Times       []float64          `json:"times"`
	Positions   [][3]float64       `json:"positions"`
	Metrics     map[string]float64 `json:"metrics"`
}

func build(meta *storage.RunMetadata, points []geom.Point) Data {
	data := Data{
		ID:          meta.ID,
		Scenario:    meta.Scenario,
		Integrator:  meta.Integrator,
		Dt:          meta.Dt,
		MaxTime:     meta.MaxTime,
		Termination: meta.Termination,
		Steps:       meta.Steps,
		Times:       make([]float64, len(points)),
		Positions:   make([][3]float64, len(points)),
		Metrics:     meta.Metrics,
	}
	for i, pt := range points {
		data.Times[i] = pt.T
		data.Positions[i] = [3]float64{pt.X, pt.Y, pt.Z}
	}
	return data
}

// JSON writes the run as indented JSON.
func JSON(w io.Writer, meta *storage.RunMetadata, points []geom.Point) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(build(meta, points))
}

// JSONMeta writes only the run metadata as indented JSON.
func JSONMeta(w io.Writer, meta *storage.RunMetadata) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// JSONFile writes the run as indented JSON to path.
func JSONFile(path string, meta *storage.RunMetadata, points []geom.Point) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return JSON(file, meta, points)
}
