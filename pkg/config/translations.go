package config

import (
	"time"

	"gitlab.com/alephledger/election-go/pkg/logging"
)

// LogConfig translates the logging part of the parameters into a logging.LogConfig writing to the given path.
func LogConfig(params Params, path string) logging.LogConfig {
	return logging.LogConfig{
		Level:    params.LogLevel,
		Path:     path,
		DiodeBuf: params.LogBuffer,
		TimeUnit: time.Millisecond,
		Human:    params.LogHuman,
	}
}
