package mocks

import "synapsetalk/internal/config"

// ConfigStoreMock is an in-memory configuration store with the same
// non-empty-only save rule as the file-backed one.
type ConfigStoreMock struct {
	LoadFunc func() config.Values
	SaveFunc func(updates config.Values) error

	Values config.Values
	Saves  []config.Values
}

func (m *ConfigStoreMock) Load() config.Values {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	out := make(config.Values, len(config.Keys()))
	for _, k := range config.Keys() {
		out[k] = m.Values[k]
	}
	return out
}

func (m *ConfigStoreMock) Save(updates config.Values) error {
	m.Saves = append(m.Saves, updates)
	if m.SaveFunc != nil {
		return m.SaveFunc(updates)
	}
	if m.Values == nil {
		m.Values = make(config.Values)
	}
	for k, v := range updates {
		if v != "" {
			m.Values[k] = v
		}
	}
	return nil
}
