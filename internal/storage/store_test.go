package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func sampleRecording() *Recording {
	return &Recording{
		Frames: []Frame{
			{T: 0, X: 0, Y: 0, Speed: 0},
			{T: 0.016, X: 0.1, Y: 0, Angle: 0.01, Speed: 6.25, SpeedKmh: 75, AngularVelocity: 0.5},
		},
		Metrics: map[string]float64{
			"distance": 0.1,
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("cruise", "cruise", 0.016, 30.0, sampleRecording())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Scenario != "cruise" {
		t.Errorf("expected scenario 'cruise', got '%s'", meta.Scenario)
	}
	if meta.Frames != 2 {
		t.Errorf("expected 2 frames, got %d", meta.Frames)
	}
	if meta.Metrics["distance"] != 0.1 {
		t.Errorf("expected distance 0.1, got %f", meta.Metrics["distance"])
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[1].SpeedKmh != 75 {
		t.Errorf("expected speed 75 km/h, got %f", frames[1].SpeedKmh)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("coast", "none", 0.016, 10.0, sampleRecording()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("coast", "none", 0.016, 10.0, sampleRecording())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "telemetry.csv")); os.IsNotExist(err) {
		t.Error("telemetry.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")

	if err := ExportJSON(path, "cruise", "cruise", 0.016, 30.0, sampleRecording()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var exported ExportData
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("exported file not valid JSON: %v", err)
	}
	if exported.Scenario != "cruise" {
		t.Errorf("expected scenario cruise, got %s", exported.Scenario)
	}
	if len(exported.Frames) != 2 {
		t.Errorf("expected 2 frames, got %d", len(exported.Frames))
	}
}
