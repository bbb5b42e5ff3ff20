package tests

import (
	"fmt"
	"io"

	"gitlab.com/alephledger/election-go/pkg/dag"
	"gitlab.com/alephledger/election-go/pkg/gomel"
)

// WriteDag writes a description of the given dag in the following format:
//
// The 1st line contains an integer N - the number of processes.
// Then there is one line per unit in the following format:
//
//	C-R [Parents]
//
// Where
//  (1) C is the Creator of a unit,
//  (2) R is the Round of a unit,
//  (3) Parents is the list of units separated by a single space encoded in the same C-R format.
//
// Units are written round by round, so every unit comes after its parents.
func WriteDag(writer io.Writer, units *dag.Units) error {
	if _, err := fmt.Fprintf(writer, "%d\n", units.NProc()); err != nil {
		return err
	}
	var err error
	units.Iterate(func(u gomel.Unit) bool {
		if _, err = fmt.Fprintf(writer, "%d-%d", u.Creator(), u.Round()); err != nil {
			return false
		}
		for _, h := range u.Parents() {
			if h == nil {
				continue
			}
			p := units.Get(h)
			if _, err = fmt.Fprintf(writer, " %d-%d", p.Creator(), p.Round()); err != nil {
				return false
			}
		}
		_, err = fmt.Fprintf(writer, "\n")
		return err == nil
	})
	return err
}
