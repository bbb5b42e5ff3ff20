package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"gitlab.com/alephledger/election-go/pkg/dag"
	"gitlab.com/alephledger/election-go/pkg/tests"
)

func writeToFile(filename string, units *dag.Units) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	out := bufio.NewWriter(file)
	if err := tests.WriteDag(out, units); err != nil {
		return err
	}
	return out.Flush()
}

// Generates a random dag in which every unit has parents from at least a threshold of processes.
func main() {
	nProc := flag.Int("n", 4, "size of the committee")
	rounds := flag.Int("rounds", 10, "number of rounds")
	seed := flag.Int64("seed", 1, "seed of the random generator")
	output := flag.String("o", "random.txt", "output file")
	flag.Parse()

	units := dag.New(uint16(*nProc))
	for _, u := range tests.RandomDag(uint16(*nProc), *rounds-1, rand.New(rand.NewSource(*seed))) {
		if err := units.Add(u); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if err := writeToFile(*output, units); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
