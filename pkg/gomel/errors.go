package gomel

import "fmt"

// DataError represents incorrect data received from a process.
// Indicates a problem with the process providing the data.
type DataError struct {
	msg string
}

// Error returns a string description of a DataError.
func (e *DataError) Error() string {
	return "DataError: " + e.msg
}

// NewDataError constructs a DataError from a given msg.
func NewDataError(msg string) *DataError {
	return &DataError{msg}
}

// DuplicateUnit is an error-like object used when encountering a unit that is already known. Usually not a problem.
type DuplicateUnit struct {
	Unit Unit
}

// Error returns a (fixed) string description of a DuplicateUnit.
func (e *DuplicateUnit) Error() string {
	return "Unit already in dag."
}

// NewDuplicateUnit constructs a DuplicateUnit error for the given unit.
func NewDuplicateUnit(unit Unit) *DuplicateUnit {
	return &DuplicateUnit{unit}
}

// UnknownParents is an error-like object used when trying to add a unit whose parents are not in the dag.
type UnknownParents struct {
	Amount int
}

// Error returns a (fixed) string description of a UnknownParents.
func (e *UnknownParents) Error() string {
	return "Unknown parents"
}

// NewUnknownParents constructs a UnknownParents error for the given unit.
func NewUnknownParents(howMany int) *UnknownParents {
	return &UnknownParents{howMany}
}

// NotReady is returned when an election for a round is requested before the dag is deep enough above that round.
// It is expected, the caller should retry once more units arrive.
type NotReady struct {
	Round   int
	Highest int
}

// Error returns a string description of a NotReady.
func (e *NotReady) Error() string {
	return fmt.Sprintf("NotReady: election for round %d needs round %d, highest known is %d", e.Round, e.Round+3, e.Highest)
}

// NewNotReady constructs a NotReady error for the given round and the highest round currently known.
func NewNotReady(round, highest int) *NotReady {
	return &NotReady{round, highest}
}

// ConfigError is returned when a provided configuration can not be parsed.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string {
	return "ConfigError: " + e.msg
}

// NewConfigError constructs a ConfigError from a given msg.
func NewConfigError(msg string) *ConfigError {
	return &ConfigError{msg}
}
