package sim

import "github.com/pion/randutil"

// Scenario describes one demo run: the channel configuration plus the
// payloads to transmit.
type Scenario struct {
	Name string
	Seed int64

	ErrorRate    float64
	MinErrorRate float64
	MaxErrorRate float64
	Window       int

	Payloads []any
}

// BasicTransmission sends a single structured payload at a moderate
// starting error rate.
func BasicTransmission(seed int64) Scenario {
	return Scenario{
		Name:      "basic_transmission",
		Seed:      seed,
		ErrorRate: 0.2,
		Payloads: []any{
			map[string]any{"message": "Hello, World!", "test_id": 1},
		},
	}
}

// MixedPayloadStress sends a mixed batch at a high starting error rate.
// The channel payload cannot be serialized and exercises the
// encode-failure path.
func MixedPayloadStress(seed int64) Scenario {
	return Scenario{
		Name:      "mixed_payload_stress",
		Seed:      seed,
		ErrorRate: 0.5,
		Payloads: []any{
			map[string]any{"message": "Normal message", "test_id": 1},
			map[string]any{"message": "🌟 Unicode test", "test_id": 2},
			map[string]any{"message": longMessage(1000), "test_id": 3},
			make(chan int),
		},
	}
}

const alnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// longMessage builds an alphanumeric filler payload of n characters. Only
// its length matters to the simulation.
func longMessage(n int) string {
	return randutil.NewMathRandomGenerator().GenerateString(n, alnum)
}
