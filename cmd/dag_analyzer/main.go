package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"gitlab.com/alephledger/election-go/pkg/config"
	"gitlab.com/alephledger/election-go/pkg/dag"
	"gitlab.com/alephledger/election-go/pkg/gomel"
	"gitlab.com/alephledger/election-go/pkg/linear"
	"gitlab.com/alephledger/election-go/pkg/logging"
	"gitlab.com/alephledger/election-go/pkg/tests"
)

type dagStats struct {
	NProc         uint16
	NUnits        int
	Round         StatAggregated
	NParents      StatAggregated
	CitedByNext   StatAggregated
	Heads         []headInfo
	Metrics       map[string]float64
	NextRound     int
	NotDecidedYet int
}

type headInfo struct {
	Round      int
	Creator    uint16
	Hash       string
	Eliminated int
}

type stat func(units *dag.Units, u gomel.Unit) int

var round stat = func(_ *dag.Units, u gomel.Unit) int {
	return u.Round()
}

var nParents stat = func(_ *dag.Units, u gomel.Unit) int {
	return gomel.ParentCount(u)
}

// citedByNext is the number of units of the next round having u as a parent.
var citedByNext stat = func(units *dag.Units, u gomel.Unit) int {
	result := 0
	for _, h := range units.InRound(u.Round() + 1) {
		if v := units.Get(h); v != nil && gomel.CitesParent(v, u.Creator(), u.Hash()) {
			result++
		}
	}
	return result
}

// StatAnalyzed represents basic statistics of slice of ints
type StatAnalyzed struct {
	Distribution map[int]int
	Min          int
	Max          int
	Avg          float64
}

// StatAggregated represents basic statistics without aggregation, aggregated by pid and aggregated by round
type StatAggregated struct {
	Overall  StatAnalyzed
	PerProc  []StatAnalyzed
	PerRound []StatAnalyzed
}

func aggregate(stat stat, units *dag.Units, read []gomel.Unit) StatAggregated {
	maxRound := units.HighestRound()
	values := []int{}
	valuesPerPid := make([][]int, units.NProc())
	valuesPerRound := make([][]int, maxRound+1)

	for _, u := range read {
		v := stat(units, u)
		values = append(values, v)
		valuesPerPid[u.Creator()] = append(valuesPerPid[u.Creator()], v)
		valuesPerRound[u.Round()] = append(valuesPerRound[u.Round()], v)
	}

	perProc := make([]StatAnalyzed, units.NProc())
	for i := uint16(0); i < units.NProc(); i++ {
		perProc[i] = analyze(valuesPerPid[i])
	}
	perRound := make([]StatAnalyzed, maxRound+1)
	for i := 0; i <= maxRound; i++ {
		perRound[i] = analyze(valuesPerRound[i])
	}

	return StatAggregated{
		Overall:  analyze(values),
		PerProc:  perProc,
		PerRound: perRound,
	}
}

func analyze(values []int) StatAnalyzed {
	size := len(values)
	if size == 0 {
		return StatAnalyzed{}
	}
	sum := 0
	min := values[0]
	max := values[0]
	distribution := map[int]int{}

	for _, x := range values {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
		sum += x
		distribution[x]++
	}

	return StatAnalyzed{
		Min:          min,
		Max:          max,
		Avg:          float64(sum) / float64(size),
		Distribution: distribution,
	}
}

// elect feeds the units to an extender in the order they were read and collects the heads.
func elect(params config.Params, read []gomel.Unit, stats *dagStats) error {
	reg := prometheus.NewRegistry()
	metrics, err := linear.NewMetrics("dag_analyzer", reg)
	if err != nil {
		return err
	}
	extender := linear.NewExtender(params, log.Logger, metrics)
	for _, u := range read {
		heads, err := extender.AddUnit(u)
		if err != nil {
			return err
		}
		for _, head := range heads {
			stats.Heads = append(stats.Heads, headInfo{
				Round:      head.Round,
				Creator:    extender.Units().Get(head.Hash).Creator(),
				Hash:       head.Hash.Short(),
				Eliminated: head.Eliminated,
			})
		}
	}
	stats.NextRound = extender.NextRound()
	stats.NotDecidedYet = extender.Units().HighestRound() - extender.NextRound() + 1
	if stats.NotDecidedYet < 0 {
		stats.NotDecidedYet = 0
	}

	families, err := reg.Gather()
	if err != nil {
		return err
	}
	stats.Metrics = make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() != nil {
				stats.Metrics[mf.GetName()] = m.GetCounter().GetValue()
			} else if m.GetGauge() != nil {
				stats.Metrics[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	return nil
}

func storeStats(writer io.Writer, stats *dagStats) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(*stats)
}

func getParams(filename string) (config.Params, error) {
	params := config.NewDefaultParams()
	if filename == "" {
		return params, nil
	}
	file, err := os.Open(filename)
	if err != nil {
		return params, err
	}
	defer file.Close()
	err = config.NewJSONConfigLoader().LoadParams(file, &params)
	return params, err
}

type cliOptions struct {
	dagFilename     string
	paramsFilename  string
	logFilename     string
	cpuProfFilename string
	firstRound      int
	noElection      bool
}

func getOptions() cliOptions {
	var result cliOptions
	flag.StringVar(&result.dagFilename, "dag", "", "a file with the dag to analyze")
	flag.StringVar(&result.paramsFilename, "params", "", "a JSON file with parameters, defaults are used if empty")
	flag.StringVar(&result.logFilename, "log", "stderr", "the name of the file with logs")
	flag.StringVar(&result.cpuProfFilename, "cpuprof", "", "the name of the file with cpu-profile results")
	flag.IntVar(&result.firstRound, "first", -1, "the first round to elect a head for, overrides the parameters if nonnegative")
	flag.BoolVar(&result.noElection, "no_election", false, "only compute statistics of the dag")
	flag.Parse()
	if result.dagFilename == "" && flag.NArg() == 1 {
		result.dagFilename = flag.Arg(0)
	}
	return result
}

func main() {
	options := getOptions()
	if options.dagFilename == "" {
		fmt.Fprintf(os.Stderr, "Usage: dag_analyzer [options] <dag_file>\n")
		flag.PrintDefaults()
		return
	}

	params, err := getParams(options.paramsFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid params file \"%s\", because: %s.\n", options.paramsFilename, err.Error())
		return
	}
	if options.firstRound >= 0 {
		params.FirstRound = options.firstRound
	}

	units, read, err := tests.CreateDagFromTestFile(options.dagFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error while reading dag %s: %s\n", options.dagFilename, err.Error())
		return
	}
	params.NProc = units.NProc()
	if err := config.Check(params); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid params: %s\n", err.Error())
		return
	}

	if err := logging.InitLogger(config.LogConfig(params, options.logFilename)); err != nil {
		fmt.Fprintf(os.Stderr, "Creating log file \"%s\" failed because: %s.\n", options.logFilename, err.Error())
		return
	}
	if params.LogMemInterval > 0 {
		memlog := logging.NewService(params.LogMemInterval, log.Logger)
		memlog.Start()
		defer memlog.Stop()
	}

	if options.cpuProfFilename != "" {
		f, err := os.Create(options.cpuProfFilename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Creating cpu-profile file \"%s\" failed because: %s.\n", options.cpuProfFilename, err.Error())
			return
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Cpu-profile failed to start because: %s", err.Error())
			return
		}
		defer pprof.StopCPUProfile()
	}

	stats := &dagStats{
		NProc:       units.NProc(),
		NUnits:      units.Size(),
		Round:       aggregate(round, units, read),
		NParents:    aggregate(nParents, units, read),
		CitedByNext: aggregate(citedByNext, units, read),
	}
	if !options.noElection {
		if err := elect(params, read, stats); err != nil {
			log.Error().Str("where", "dag_analyzer").Msg(err.Error())
			fmt.Fprintf(os.Stderr, "Electing heads failed because: %s\n", err.Error())
			return
		}
	}
	if err := storeStats(os.Stdout, stats); err != nil {
		fmt.Fprintf(os.Stderr, "Writing stats failed because: %s\n", err.Error())
	}
}
