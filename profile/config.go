package profile

import (
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration.
type Flags struct {
	CPUProfile     string
	HeapProfile    string
	MemProfileRate string
}

// Config holds profile output paths. Empty paths disable the profile.
type Config struct {
	Flags          Flags
	CPUProfile     string
	HeapProfile    string
	MemProfileRate int
}

// NewConfig creates a new [Config] with default flag names and all profiles
// disabled.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			CPUProfile:     "cpu-profile",
			HeapProfile:    "heap-profile",
			MemProfileRate: "mem-profile-rate",
		},
	}
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "", "write CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "", "write heap profile to file")
	flags.IntVar(&c.MemProfileRate, c.Flags.MemProfileRate, 0,
		"memory profile rate in bytes per sample (0 keeps the runtime default)")

	for _, name := range []string{c.Flags.CPUProfile, c.Flags.HeapProfile, c.Flags.MemProfileRate} {
		flags.Lookup(name).Hidden = true
	}
}

// NewProfiler creates a [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{cfg: c}
}
