package audit

import "github.com/rs/zerolog"

type Event struct {
	Principal string
	Action    string
	Entity    string
	EntityID  string
	Metadata  any
}

// Sink persists audit events. Implementations must never block the
// request path; the dispatcher calls them from its own goroutine.
type Sink interface {
	Write(ev Event) error
}

type Dispatcher struct {
	sink   Sink
	logger *zerolog.Logger
	queue  chan Event
}

func NewDispatcher(sink Sink, logger *zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Write(ev); err != nil {
			d.logger.Error().Err(err).
				Str("action", ev.Action).
				Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the event rather than stall the API
		d.logger.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
