package logging

import (
	"github.com/rs/zerolog"

	"gitlab.com/alephledger/election-go/pkg/gomel"
)

// AddingError logs information about an error returned when adding the given unit to the dag.
// A nil error is logged as a successful insertion.
func AddingError(err error, u gomel.Unit, log zerolog.Logger) {
	if err == nil {
		log.Debug().Uint16(Creator, u.Creator()).Int(Round, u.Round()).Msg(UnitAdded)
		return
	}
	switch e := err.(type) {
	case *gomel.DuplicateUnit:
		log.Info().Uint16(Creator, u.Creator()).Int(Round, u.Round()).Msg(DuplicatedUnit)
	case *gomel.UnknownParents:
		log.Info().Uint16(Creator, u.Creator()).Int(Round, u.Round()).Int(Size, e.Amount).Msg(UnknownParents)
	default:
		log.Warn().Uint16(Creator, u.Creator()).Int(Round, u.Round()).Str(Reason, err.Error()).Msg(UnitRejected)
	}
}
