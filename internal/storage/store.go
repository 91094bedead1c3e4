// Package storage persists flight runs as per-run directories holding a
// metadata.json and a trajectory.csv with a commented header block.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/stepperanch/projsim/internal/ballistics"
	"github.com/stepperanch/projsim/internal/flight"
	"github.com/stepperanch/projsim/internal/geom"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Launch is a snapshot of the initial conditions, taken before the run
// mutates the projectile.
type Launch struct {
	Position geom.Point        `json:"position"`
	Velocity geom.Vec3         `json:"velocity"`
	Spin     geom.Vec3         `json:"spin"`
	Params   ballistics.Params `json:"params"`
}

// Snapshot captures a projectile's launch state.
func Snapshot(p *ballistics.Projectile) Launch {
	return Launch{
		Position: p.Position(),
		Velocity: p.Velocity(),
		Spin:     p.Spin(),
		Params:   p.Params(),
	}
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Scenario    string             `json:"scenario"`
	Timestamp   time.Time          `json:"timestamp"`
	Dt          float64            `json:"dt"`
	MaxTime     float64            `json:"max_time"`
	Integrator  string             `json:"integrator"`
	Wind        geom.Vec3          `json:"wind"`
	Launch      Launch             `json:"launch"`
	Termination string             `json:"termination"`
	FlightTime  float64            `json:"flight_time"`
	Steps       int                `json:"steps"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes a run directory and returns its id.
func (s *Store) Save(scenario string, dt, maxTime float64, integrator string, wind geom.Vec3, launch Launch, result *flight.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Scenario:    scenario,
		Timestamp:   time.Now(),
		Dt:          dt,
		MaxTime:     maxTime,
		Integrator:  integrator,
		Wind:        wind,
		Launch:      launch,
		Termination: result.Termination.String(),
		FlightTime:  result.Trajectory.FlightTime(),
		Steps:       result.Steps,
		Metrics:     result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteTrajectoryCSV(csvFile, launch, &result.Trajectory); err != nil {
		return "", err
	}

	return runID, nil
}

// WriteTrajectoryCSV writes the commented header block followed by
// time,x,y,z rows.
func WriteTrajectoryCSV(f io.Writer, launch Launch, tr *ballistics.Trajectory) error {
	final := tr.FinalPoint()

	header := fmt.Sprintf(
		"#Projectile Motion Simulation Data\n"+
			"#Initial Position (m): %s\n"+
			"#Initial Velocity (m/s): %s\n"+
			"#Initial Spin (rad/s): %s\n"+
			"#Diameter (m): %g\n"+
			"#Mass (kg): %g\n"+
			"#Drag Coefficient: %g\n"+
			"#Air Density (kg/m^3): %g\n"+
			"#Final Time (s): %g\n"+
			"#Final Position (m): %s\n",
		launch.Position.Vec3, launch.Velocity, launch.Spin,
		launch.Params.Radius*2, launch.Params.Mass,
		launch.Params.DragCoeff, launch.Params.AirDensity,
		final.T, final.Vec3)
	if _, err := io.WriteString(f, header); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return err
	}

	for _, pt := range tr.Points() {
		row := []string{
			strconv.FormatFloat(pt.T, 'f', 6, 64),
			strconv.FormatFloat(pt.X, 'f', 6, 64),
			strconv.FormatFloat(pt.Y, 'f', 6, 64),
			strconv.FormatFloat(pt.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrajectory reads the stored point sequence back. Header comment
// lines are skipped by the CSV reader.
func (s *Store) LoadTrajectory(runID string) ([]geom.Point, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comment = '#'
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]geom.Point, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 4 {
			continue // column header row
		}

		vals := make([]float64, 4)
		ok := true
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		points = append(points, geom.NewPoint(vals[1], vals[2], vals[3], vals[0]))
	}

	return points, nil
}
