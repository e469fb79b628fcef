package fake

import "github.com/vulkangpu/gpu/native"

// Queue submits synchronously: Submit immediately applies every
// pending signal (so fence waits never actually block) and clears
// the pending signal list, resolving fences eagerly rather than
// waiting on real GPU work. AppendWait discards its argument; no wait
// list is kept.
type Queue struct {
	Resource
	pendingSignals []native.SemSignal
}

func (q *Queue) AppendWait(native.SemWait) {}

func (q *Queue) AppendSignal(s native.SemSignal) {
	q.pendingSignals = append(q.pendingSignals, s)
}

func (q *Queue) Submit(native.CmdBuffer) error {
	for _, s := range q.pendingSignals {
		if s.Fence != nil {
			s.Fence.Signal(s.Value)
		}
		if s.Binary != nil {
			if bs, ok := s.Binary.(*BinarySemaphore); ok {
				bs.signaled.Store(true)
			}
		}
	}
	q.pendingSignals = nil
	return nil
}

func (q *Queue) Present(native.Swapchain, int, native.BinarySemaphore) error { return nil }
func (q *Queue) WaitIdle() error                                            { return nil }

// QueueFamily holds a single Queue, sufficient for the fake backend.
type QueueFamily struct {
	queue *Queue
}

func (f *QueueFamily) QueueCount() int            { return 1 }
func (f *QueueFamily) Queue(int) native.Queue      { return f.queue }
