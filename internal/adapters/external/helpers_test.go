package external

import (
	"sync"
	"time"

	"weatherdash.app/internal/ports"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

// testLogger captures log entries for assertions
type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) log(level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry := logEntry{level: level, message: msg, fields: make(map[string]interface{}, len(fields))}
	for _, f := range fields {
		entry.fields[f.Key] = f.Value
	}
	l.entries = append(l.entries, entry)
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) { l.log("DEBUG", msg, fields) }
func (l *testLogger) Info(msg string, fields ...ports.Field)  { l.log("INFO", msg, fields) }
func (l *testLogger) Warn(msg string, fields ...ports.Field)  { l.log("WARN", msg, fields) }
func (l *testLogger) Error(msg string, fields ...ports.Field) { l.log("ERROR", msg, fields) }

func (l *testLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.level == level {
			out = append(out, e.message)
		}
	}
	return out
}

type observation struct {
	upstream string
	outcome  string
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveUpstream(upstream, outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{upstream: upstream, outcome: outcome})
}

func (o *recordingObserver) outcomes() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.seen))
	for _, s := range o.seen {
		out = append(out, s.outcome)
	}
	return out
}
