// Package config loads simulator configuration from YAML.
package config

// Config holds all tunable settings for the simulator.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Watch      WatchConfig      `yaml:"watch"`
	Display    DisplayConfig    `yaml:"display"`
}

// SimulationConfig controls the run command.
type SimulationConfig struct {
	// Cycles is the default number of spin cycles for `run`.
	Cycles int `yaml:"cycles"`
}

// WatchConfig controls the interactive watch session.
type WatchConfig struct {
	// TicksPerSecond is the autoplay stepping rate.
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// DisplayConfig controls grid rendering.
type DisplayConfig struct {
	// Color enables lipgloss-styled grid output.
	Color bool `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			Cycles: 1_000_000_000,
		},
		Watch: WatchConfig{
			TicksPerSecond: 10,
		},
		Display: DisplayConfig{
			Color: true,
		},
	}
}
