// Package storage persists simulation runs to disk. Each run gets its
// own directory with a metadata.json and a telemetry.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Frame is one telemetry sample of a run.
type Frame struct {
	T               float64
	X               float64
	Y               float64
	Angle           float64
	Speed           float64
	SpeedKmh        float64
	AngularVelocity float64
}

// Recording collects a run's telemetry and final metric values.
type Recording struct {
	Frames  []Frame
	Metrics map[string]float64
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Driver    string             `json:"driver"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Frames    int                `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
}

var csvHeader = []string{"time", "x", "y", "angle", "speed", "speed_kmh", "angular_velocity"}

func (s *Store) Save(scenario, driver string, dt, duration float64, rec *Recording) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Driver:    driver,
		Dt:        dt,
		Duration:  duration,
		Frames:    len(rec.Frames),
		Metrics:   rec.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "telemetry.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	for _, f := range rec.Frames {
		row := []string{
			strconv.FormatFloat(f.T, 'f', 6, 64),
			strconv.FormatFloat(f.X, 'f', 6, 64),
			strconv.FormatFloat(f.Y, 'f', 6, 64),
			strconv.FormatFloat(f.Angle, 'f', 6, 64),
			strconv.FormatFloat(f.Speed, 'f', 6, 64),
			strconv.FormatFloat(f.SpeedKmh, 'f', 6, 64),
			strconv.FormatFloat(f.AngularVelocity, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]Frame, error) {
	csvPath := filepath.Join(s.baseDir, runID, "telemetry.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []Frame{}, nil
	}

	frames := make([]Frame, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < len(csvHeader) {
			continue
		}

		vals := make([]float64, len(csvHeader))
		ok := true
		for j := range vals {
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

		frames = append(frames, Frame{
			T:               vals[0],
			X:               vals[1],
			Y:               vals[2],
			Angle:           vals[3],
			Speed:           vals[4],
			SpeedKmh:        vals[5],
			AngularVelocity: vals[6],
		})
	}

	return frames, nil
}
