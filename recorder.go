package main

import (
	"log"
	"sync"
	"time"
)

const (
	frameChanSize  = 1024
	frameBatchSize = 64
	flushInterval  = 2 * time.Second
)

// RunMeta describes the run a recorder is writing
type RunMeta struct {
	PlaneType string
	Seed      int64
}

// Recorder persists telemetry frames with batched background writes so
// the simulation tick never blocks on the database
type Recorder struct {
	db     *DB
	runID  int64
	frames chan Frame
	stop   chan struct{}
	wg     sync.WaitGroup
}

// NewRecorder registers a run and starts the background writer
func NewRecorder(db *DB, meta RunMeta) (*Recorder, error) {
	runID, err := db.InsertRun(meta.PlaneType, meta.Seed)
	if err != nil {
		return nil, err
	}
	r := &Recorder{
		db:     db,
		runID:  runID,
		frames: make(chan Frame, frameChanSize),
		stop:   make(chan struct{}),
	}
	r.wg.Add(1)
	go r.writer()
	return r, nil
}

// RunID returns the database id of the run being recorded
func (r *Recorder) RunID() int64 {
	return r.runID
}

// Record enqueues a frame without blocking; frames are dropped when
// the writer falls too far behind
func (r *Recorder) Record(f Frame) {
	select {
	case r.frames <- f:
	default:
		log.Printf("recorder: dropping frame %d for run %d (queue full)", f.Tick, r.runID)
	}
}

// Close drains pending frames, flushes them, and finalizes the run row
func (r *Recorder) Close(ticks uint64, outcome string) error {
	close(r.stop)
	r.wg.Wait()
	return r.db.FinishRun(r.runID, ticks, outcome)
}

func (r *Recorder) writer() {
	defer r.wg.Done()

	batch := make([]Frame, 0, frameBatchSize)
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := r.db.InsertFrames(r.runID, batch); err != nil {
			log.Printf("recorder: failed to write %d frames for run %d: %v", len(batch), r.runID, err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case f := <-r.frames:
			batch = append(batch, f)
			if len(batch) >= frameBatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-r.stop:
			for {
				select {
				case f := <-r.frames:
					batch = append(batch, f)
					if len(batch) >= frameBatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}
