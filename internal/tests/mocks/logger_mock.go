package mocks

import "sync"

// LoggerMock satisfies the Wails logger.Logger interface and keeps every
// message so tests can assert on warnings.
type LoggerMock struct {
	mu       sync.Mutex
	Messages map[string][]string
}

func (m *LoggerMock) record(level, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Messages == nil {
		m.Messages = make(map[string][]string)
	}
	m.Messages[level] = append(m.Messages[level], message)
}

func (m *LoggerMock) Print(message string)   { m.record("print", message) }
func (m *LoggerMock) Trace(message string)   { m.record("trace", message) }
func (m *LoggerMock) Debug(message string)   { m.record("debug", message) }
func (m *LoggerMock) Info(message string)    { m.record("info", message) }
func (m *LoggerMock) Warning(message string) { m.record("warning", message) }
func (m *LoggerMock) Error(message string)   { m.record("error", message) }
func (m *LoggerMock) Fatal(message string)   { m.record("fatal", message) }

// Warnings returns a copy of the logged warnings.
func (m *LoggerMock) Warnings() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Messages["warning"]...)
}
