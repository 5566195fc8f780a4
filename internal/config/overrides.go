package config

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
)

// ApplyOverrides sets keys from a key=value map, converting each value to the
// key's type. Keys are applied in sorted order so errors are deterministic.
func (m *Model) ApplyOverrides(kv map[string]string) error {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := m.Set(k, kv[k]); err != nil {
			return err
		}
	}
	return nil
}

// Set assigns a single setting from its string form.
func (m *Model) Set(key, value string) error {
	var err error
	switch key {
	case KeyPrecision:
		m.Simulation.Precision, err = cast.ToFloat64E(value)
	case KeyOrder:
		m.Simulation.Order = value
	case KeyBackend:
		m.Simulation.Backend = value
	case KeyMaxPasses:
		m.Simulation.MaxPasses, err = cast.ToIntE(value)
	case KeyMonitor:
		m.Simulation.Monitor, err = cast.ToBoolE(value)
	case KeyRain:
		m.Rain = Rain{Source: value}
	default:
		return fmt.Errorf("%w: %q (known keys: %v)", ErrUnknownKey, key, Keys())
	}
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, key, value, err)
	}
	return nil
}
