package config

import (
	"gitlab.com/alephledger/election-go/pkg/gomel"
)

// Check verifies that the parameters are consistent.
func Check(params Params) error {
	if params.NProc == 0 {
		return gomel.NewConfigError("NProc cannot be 0")
	}
	if params.FirstRound < 0 {
		return gomel.NewConfigError("FirstRound cannot be negative")
	}
	if params.ChannelBuffer < 0 {
		return gomel.NewConfigError("ChannelBuffer cannot be negative")
	}
	if params.LogLevel < -1 || params.LogLevel > 5 {
		return gomel.NewConfigError("LogLevel outside of the [-1, 5] range")
	}
	if params.LogBuffer < 0 {
		return gomel.NewConfigError("LogBuffer cannot be negative")
	}
	if params.LogMemInterval < 0 {
		return gomel.NewConfigError("LogMemInterval cannot be negative")
	}
	return nil
}
