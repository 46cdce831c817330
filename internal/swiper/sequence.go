package swiper

// navPhase is the state of the two-frame navigation sequence.
//
//	idle --navigate--> pendingSnap --frame--> pendingAnimate --frame--> idle
//
// The snap frame repositions out-of-range wrap positions with Moving set,
// so the host paints it without a transition. The animate frame performs
// the real move.
type navPhase int

const (
	phaseIdle navPhase = iota
	phasePendingSnap
	phasePendingAnimate
)

func (p navPhase) String() string {
	switch p {
	case phasePendingSnap:
		return "pending-snap"
	case phasePendingAnimate:
		return "pending-animate"
	default:
		return "idle"
	}
}

// navRequest resolves its page delta against the active index current at
// the animate frame.
type navRequest struct {
	name string
	pace func(active int) int
}

type navSequence struct {
	phase   navPhase
	current navRequest
	queue   []navRequest
	// epoch invalidates frame callbacks scheduled before a reset.
	epoch int
}

func (q *navSequence) busy() bool {
	return q.phase != phaseIdle
}

func (q *navSequence) push(req navRequest) {
	q.queue = append(q.queue, req)
}

func (q *navSequence) pop() (navRequest, bool) {
	if len(q.queue) == 0 {
		return navRequest{}, false
	}
	req := q.queue[0]
	q.queue = q.queue[1:]
	return req, true
}

// reset drops the running sequence and everything queued behind it.
func (q *navSequence) reset() {
	q.phase = phaseIdle
	q.current = navRequest{}
	q.queue = nil
	q.epoch++
}
