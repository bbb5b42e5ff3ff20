package tests

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gitlab.com/alephledger/election-go/pkg/dag"
	"gitlab.com/alephledger/election-go/pkg/gomel"
	"gitlab.com/alephledger/election-go/pkg/unit"
)

// ReadDag reads a dag description in the format produced by WriteDag.
// Returns the dag together with its units in the order they were read.
func ReadDag(reader io.Reader) (*dag.Units, []gomel.Unit, error) {
	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		return nil, nil, gomel.NewDataError("missing committee size")
	}
	var n uint16
	_, err := fmt.Sscanf(scanner.Text(), "%d", &n)
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, nil, gomel.NewDataError("empty committee")
	}

	units := dag.New(n)
	hashes := make(map[[2]int]*gomel.Hash)
	var read []gomel.Unit

	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		// skip comments and empty lines
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		var creator, round int
		parents := make([]*gomel.Hash, n)
		for i, t := range strings.Fields(text) {
			var c, r int
			_, err := fmt.Sscanf(t, "%d-%d", &c, &r)
			if err != nil {
				return nil, nil, err
			}
			if c < 0 || c >= int(n) {
				return nil, nil, gomel.NewDataError("creator outside of the committee")
			}
			if i == 0 {
				creator, round = c, r
				continue
			}
			h, ok := hashes[[2]int{c, r}]
			if !ok {
				return nil, nil, gomel.NewDataError("Trying to set parent to non-existing unit")
			}
			if parents[c] != nil {
				return nil, nil, gomel.NewDataError("Duplicate parent")
			}
			parents[c] = h
		}
		u := unit.New(uint16(creator), round, parents, nil)
		if err := units.Add(u); err != nil {
			return nil, nil, err
		}
		hashes[[2]int{creator, round}] = u.Hash()
		read = append(read, u)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return units, read, nil
}

// CreateDagFromTestFile reads a dag description from the given test file.
func CreateDagFromTestFile(filename string) (*dag.Units, []gomel.Unit, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()
	return ReadDag(bufio.NewReader(file))
}
