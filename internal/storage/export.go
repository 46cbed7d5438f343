package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Scenario string             `json:"scenario"`
	Driver   string             `json:"driver"`
	Dt       float64            `json:"dt"`
	Duration float64            `json:"duration"`
	Frames   []Frame            `json:"frames"`
	Metrics  map[string]float64 `json:"metrics"`
}

func exportJSON(w io.Writer, scenario, driver string, dt, duration float64, rec *Recording) error {
	data := ExportData{
		Scenario: scenario,
		Driver:   driver,
		Dt:       dt,
		Duration: duration,
		Frames:   rec.Frames,
		Metrics:  rec.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path, scenario, driver string, dt, duration float64, rec *Recording) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return exportJSON(file, scenario, driver, dt, duration, rec)
}

func ExportJSONStdout(scenario, driver string, dt, duration float64, rec *Recording) error {
	return exportJSON(os.Stdout, scenario, driver, dt, duration, rec)
}
