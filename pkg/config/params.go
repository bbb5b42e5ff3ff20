// Package config reads and writes the configuration of the program.
//
// The parameters cover the committee the heads are elected for, the head sequencer and logging.
package config

// Params represents a set of process parameters adjustable via JSON config files.
type Params struct {
	// The size of the committee creating units.
	NProc uint16

	// The round of the first head to elect.
	FirstRound int

	// The capacity of the channels feeding units to and heads out of the extender service.
	ChannelBuffer int

	// Log level: 0-debug 1-info 2-warn 3-error 4-fatal 5-panic.
	LogLevel int

	// The size of log diode buffer in bytes. 0 disables the diode. Recommended at least 100k.
	LogBuffer int

	// How often (in seconds) to log the memory usage. 0 to disable.
	LogMemInterval int

	// Whether to write the log in the human readable form or in JSON.
	LogHuman bool
}

// NewDefaultParams returns default set of parameters.
func NewDefaultParams() Params {
	result := Params{

		NProc: 4,

		FirstRound: 0,

		ChannelBuffer: 64,

		LogLevel: 1,

		LogBuffer: 100000,

		LogMemInterval: 0,

		LogHuman: false,
	}
	return result
}
