package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"gitlab.com/alephledger/election-go/pkg/logging"
)

func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	switch _, err := os.Stat(name); {
	case os.IsNotExist(err):
		return nil, fmt.Errorf("%s: file not present", name)
	case err != nil:
		return nil, fmt.Errorf("%s: cannot open file", name)
	}
	return os.Open(name)
}

func main() {
	outName := flag.String("o", "", "write the decoded log to this file instead of stdout")
	strict := flag.Bool("strict", false, "stop on the first line that is not a valid log entry")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: log4humanz [-o output] [-strict] logfile.json|-")
		return
	}

	input, err := openInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	defer input.Close()

	var output io.Writer = os.Stdout
	if *outName != "" {
		file, err := os.Create(*outName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot create file\n", *outName)
			return
		}
		defer file.Close()
		output = file
	}
	writer := bufio.NewWriter(output)
	defer writer.Flush()

	scanner := bufio.NewScanner(input)
	decoder := logging.NewDecoder(writer)
	broken := 0
	for line := 1; scanner.Scan(); line++ {
		if _, err := decoder.Write(scanner.Bytes()); err != nil {
			if *strict {
				fmt.Fprintf(os.Stderr, "line %d: %s\n", line, err.Error())
				return
			}
			broken++
		}
	}
	if broken > 0 {
		fmt.Fprintf(os.Stderr, "skipped %d broken lines\n", broken)
	}
}
