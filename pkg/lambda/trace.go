package lambda

type EventKind int

const (
	EventUnknown EventKind = iota
	EventLookup
	EventClosure
	EventApply
	EventMemoHit
)

func (k EventKind) String() string {
	switch k {
	case EventLookup:
		return "Lookup"
	case EventClosure:
		return "Closure"
	case EventApply:
		return "Apply"
	case EventMemoHit:
		return "MemoHit"
	default:
		return "Unknown"
	}
}

type TraceEvent struct {
	Step   uint64
	Kind   EventKind
	Detail string
}

// Stats holds evaluation counters.
type Stats struct {
	Steps        uint64
	Lookups      uint64
	Closures     uint64
	Applications uint64
	MemoHits     uint64
}

// EnableTrace records the first capacity events of subsequent evaluations.
func (ev *Evaluator) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	ev.traceBuf = make([]TraceEvent, 0, capacity)
	ev.traceOn = true
}

func (ev *Evaluator) DisableTrace() {
	ev.traceOn = false
}

func (ev *Evaluator) TraceSnapshot() []TraceEvent {
	if !ev.traceOn {
		return nil
	}
	res := make([]TraceEvent, len(ev.traceBuf))
	copy(res, ev.traceBuf)
	return res
}

func (ev *Evaluator) recordTrace(kind EventKind, detail func() string) {
	if !ev.traceOn || len(ev.traceBuf) == cap(ev.traceBuf) {
		return
	}
	ev.traceBuf = append(ev.traceBuf, TraceEvent{
		Step:   ev.stats.Steps,
		Kind:   kind,
		Detail: detail(),
	})
}

// Stats returns the counters accumulated since the evaluator was created.
func (ev *Evaluator) Stats() Stats {
	return ev.stats
}

// Add sums two sets of counters.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Steps:        s.Steps + o.Steps,
		Lookups:      s.Lookups + o.Lookups,
		Closures:     s.Closures + o.Closures,
		Applications: s.Applications + o.Applications,
		MemoHits:     s.MemoHits + o.MemoHits,
	}
}
