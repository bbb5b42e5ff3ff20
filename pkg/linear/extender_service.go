package linear

import (
	"sync"

	"github.com/rs/zerolog"

	"gitlab.com/alephledger/election-go/pkg/config"
	"gitlab.com/alephledger/election-go/pkg/gomel"
	"gitlab.com/alephledger/election-go/pkg/logging"
)

// ExtenderService runs an Extender in its own goroutine.
// Units are read from the input channel, elected heads are sent to the output channel.
// The output channel is closed once the service stops, either because the input got closed or Stop was called.
type ExtenderService struct {
	extender *Extender
	input    <-chan gomel.Unit
	output   chan<- Head
	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	log      zerolog.Logger
}

// NewExtenderService constructs a service electing heads of the dag built from the units received on input.
func NewExtenderService(params config.Params, input <-chan gomel.Unit, output chan<- Head, log zerolog.Logger, metrics *Metrics) *ExtenderService {
	logger := log.With().Int(logging.Service, logging.ExtenderService).Logger()
	return &ExtenderService{
		extender: NewExtender(params, log, metrics),
		input:    input,
		output:   output,
		quit:     make(chan struct{}),
		log:      logger,
	}
}

// Start the service.
func (s *ExtenderService) Start() error {
	s.wg.Add(1)
	go s.work()
	s.log.Info().Msg(logging.ServiceStarted)
	return nil
}

// Stop the service and wait for its goroutine to finish.
func (s *ExtenderService) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
	s.log.Info().Msg(logging.ServiceStopped)
}

// work feeds the units to the extender and passes the heads on, until the input is exhausted or the service is stopped.
func (s *ExtenderService) work() {
	defer s.wg.Done()
	defer close(s.output)
	for {
		select {
		case <-s.quit:
			return
		case u, ok := <-s.input:
			if !ok {
				return
			}
			// errors are already logged by the extender, the unit is just dropped
			heads, _ := s.extender.AddUnit(u)
			for _, head := range heads {
				select {
				case s.output <- head:
				case <-s.quit:
					return
				}
			}
		}
	}
}
