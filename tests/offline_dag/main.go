package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"

	"github.com/rs/zerolog"

	"gitlab.com/alephledger/election-go/pkg/config"
	"gitlab.com/alephledger/election-go/pkg/gomel"
	"gitlab.com/alephledger/election-go/pkg/linear"
	"gitlab.com/alephledger/election-go/pkg/tests"
)

// runInstance feeds the units to a fresh extender service and collects all the heads it elects.
func runInstance(params config.Params, units []gomel.Unit, log zerolog.Logger) []linear.Head {
	input := make(chan gomel.Unit, params.ChannelBuffer)
	output := make(chan linear.Head, params.ChannelBuffer)
	service := linear.NewExtenderService(params, input, output, log, nil)
	service.Start()
	go func() {
		for _, u := range units {
			input <- u
		}
		close(input)
	}()
	var heads []linear.Head
	for head := range output {
		heads = append(heads, head)
	}
	service.Stop()
	return heads
}

// runOfflineTest elects heads of a single random dag in several processes, each receiving the units in a different order,
// and checks that all of them agree.
func runOfflineTest(nProc uint16, nRounds, nInstances int, seed int64) error {
	rnd := rand.New(rand.NewSource(seed))
	units := tests.RandomDag(nProc, nRounds, rnd)
	params := config.NewDefaultParams()
	params.NProc = nProc

	orders := make([][]gomel.Unit, nInstances)
	for i := range orders {
		orders[i] = tests.RandomTopologicalOrder(units, 2, rnd)
	}

	results := make([][]linear.Head, nInstances)
	var wg sync.WaitGroup
	for i := range orders {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = runInstance(params, orders[i], zerolog.Nop())
		}(i)
	}
	wg.Wait()

	for i, heads := range results {
		if len(heads) != len(results[0]) {
			return fmt.Errorf("instance %d elected %d heads, instance 0 elected %d", i, len(heads), len(results[0]))
		}
		for j, head := range heads {
			if !gomel.SameHash(head.Hash, results[0][j].Hash) {
				return fmt.Errorf("instance %d elected a different head of round %d", i, head.Round)
			}
		}
	}
	fmt.Printf("%d instances agreed on %d heads\n", nInstances, len(results[0]))
	return nil
}

var cpuprofile = flag.String("cpuprof", "", "the name of the file with cpu-profile results")
var memprofile = flag.String("memprof", "", "the name of the file with mem-profile results")
var nProcesses = flag.Int("n", 50, "the size of the committee")
var nRounds = flag.Int("rounds", 30, "the number of rounds of the dag")
var nInstances = flag.Int("instances", 8, "the number of processes electing heads")
var seed = flag.Int64("seed", 1, "the seed of the random dag")

func main() {

	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Creating cpu-profile file \"%s\" failed because: %s.\n", *cpuprofile, err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Cpu-profile failed to start because: %s", err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	if err := runOfflineTest(uint16(*nProcesses), *nRounds, *nInstances, *seed); err != nil {
		fmt.Println("test failed:", err.Error())
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Creating mem-profile file \"%s\" failed because: %s.\n", *memprofile, err.Error())
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Mem-profile failed to start because: %s", err.Error())
		}
	}
}
