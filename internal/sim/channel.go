package sim

import (
	"math/rand"
	"time"

	"github.com/pion/logging"
)

// Per-attempt transmission delay bounds, in virtual time.
const (
	minTransmitDelay = 100 * time.Millisecond
	maxTransmitDelay = 500 * time.Millisecond
)

// ChannelConfig configures one lossy channel. Zero values fall back to the
// controller defaults; Store is optional.
type ChannelConfig struct {
	ErrorRate    float64
	MinErrorRate float64
	MaxErrorRate float64
	Window       int
	Seed         int64

	Store         *StatsStore
	LoggerFactory logging.LoggerFactory
}

// Channel simulates one lossy hop: it owns the corruptor, the outcome
// histories and the rate controller for a run, and orchestrates every
// transmission attempt end to end. All state is mutated only from engine
// callbacks, which the engine serializes.
type Channel struct {
	eng *Engine
	rng *rand.Rand
	log logging.LeveledLogger

	corrupt *Corruptor
	rec     *Recorder
	ctrl    *Controller
	store   *StatsStore

	nextSeq uint16
}

func NewChannel(eng *Engine, cfg ChannelConfig) *Channel {
	lf := cfg.LoggerFactory
	if lf == nil {
		lf = logging.NewDefaultLoggerFactory()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	return &Channel{
		eng:     eng,
		rng:     rng,
		log:     lf.NewLogger("channel"),
		corrupt: NewCorruptor(rng),
		rec:     NewRecorder(),
		ctrl:    NewController(cfg.ErrorRate, cfg.MinErrorRate, cfg.MaxErrorRate, cfg.Window),
		store:   cfg.Store,
	}
}

func (c *Channel) Recorder() *Recorder { return c.rec }

func (c *Channel) Controller() *Controller { return c.ctrl }

// Snapshot returns the current aggregate statistics; ok is false before
// the first recorded attempt.
func (c *Channel) Snapshot() (Stats, bool) {
	return c.rec.Snapshot(c.ctrl.Rate())
}

// Transmit schedules one attempt for the packet after a uniformly sampled
// transmission delay. Once the attempt resumes it runs to completion
// without yielding again.
func (c *Channel) Transmit(pkt Packet) {
	delay := minTransmitDelay +
		time.Duration(c.rng.Float64()*float64(maxTransmitDelay-minTransmitDelay))
	c.eng.Schedule(delay, func() { c.attempt(pkt) })
}

// attempt runs the encode->corrupt->decode cycle and the bookkeeping that
// follows. Any fault, expected or not, ends as a recorded loss; nothing
// propagates into the engine.
func (c *Channel) attempt(pkt Packet) {
	defer func() {
		if v := recover(); v != nil {
			c.log.Errorf("transmission fault: %v", v)
			c.rec.RecordLoss()
		}
	}()

	start := c.eng.Now()
	seq := c.nextSeq
	c.nextSeq++

	frame, err := pkt.Encode(seq)
	if err != nil {
		c.log.Errorf("encode seq=%d: %v", seq, err)
		c.rec.RecordLoss()
		return
	}
	if len(frame) == 0 {
		c.log.Errorf("encode seq=%d produced an empty frame", seq)
		c.rec.RecordLoss()
		return
	}

	wire := c.corrupt.Corrupt(frame, c.ctrl.Rate())
	_, ok := DecodePacket(wire)
	if !ok {
		c.log.Debugf("seq=%d lost in transit", seq)
	}

	latency := c.eng.Now().Sub(start)
	c.rec.Record(latency, !ok)

	rate := c.ctrl.Adjust(c.rec.LossHistory())
	c.log.Infof("adjusted error rate to %.3f", rate)

	if c.store != nil {
		if snap, ok := c.Snapshot(); ok {
			if err := c.store.Save(snap); err != nil {
				c.log.Warnf("save statistics: %v", err)
			}
		}
	}
}
