package config

var Presets = map[string]*Config{
	"cruise": {
		Driver: "cruise", Dt: 0.016, Duration: 60.0,
		Car: CarConfig{Mass: 1000, Power: 5000, MaxSpeed: 15},
		Controller: ControllerConfig{
			Kp: 10, Ki: 0.1, Kd: 1, Target: 60,
		},
	},
	"coast": {
		Driver: "none", Dt: 0.016, Duration: 30.0,
		Car: CarConfig{Mass: 1000, Power: 5000, MaxSpeed: 15},
	},
	"heavy": {
		Driver: "cruise", Dt: 0.016, Duration: 60.0,
		Car: CarConfig{Mass: 2500, Power: 5000, MaxSpeed: 12},
		Controller: ControllerConfig{
			Kp: 10, Ki: 0.2, Kd: 2, Target: 40,
		},
	},
	"sprint": {
		Driver: "cruise", Dt: 0.008, Duration: 20.0,
		Car: CarConfig{Mass: 800, Power: 8000, MaxSpeed: 25},
		Controller: ControllerConfig{
			Kp: 15, Ki: 0.1, Kd: 1, Target: 120,
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
