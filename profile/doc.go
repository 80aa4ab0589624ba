// Package profile writes CPU and heap profiles of a CLI run.
//
// Extracting a full reference page builds a large document tree, so both
// profiles are useful when tuning it. Register the flags on the root command
// and bracket execution with [Profiler.Start] and [Profiler.Stop]:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	p := cfg.NewProfiler()
//
//	err := p.Start()
//	...
//	err = p.Stop()
//
// Profiles are written only for the flags that are set, for example
// --cpu-profile=cpu.prof.
package profile
