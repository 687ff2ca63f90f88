package service

import (
	"encoding/json"
	"log"

	"spandan/internal/models"
	"spandan/internal/repository"
	"spandan/internal/ws"
)

// Recorder is the best-effort audit side channel. Record never blocks and
// never reports failure to the mutation that produced the entry; a full
// buffer drops the entry, a failed write is logged and swallowed.
type Recorder struct {
	repo    *repository.AuditLogRepository
	hub     *ws.Hub
	entries chan models.AuditLog
	done    chan struct{}
}

func NewRecorder(repo *repository.AuditLogRepository, hub *ws.Hub, bufferSize int) *Recorder {
	if bufferSize < 1 {
		bufferSize = 64
	}
	r := &Recorder{
		repo:    repo,
		hub:     hub,
		entries: make(chan models.AuditLog, bufferSize),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

// Record enqueues an audit entry. changes is serialized to JSON; a payload
// that cannot marshal is recorded with empty changes rather than lost.
func (r *Recorder) Record(userID uint, action, entity string, entityID uint, changes interface{}) {
	var payload string
	if changes != nil {
		if data, err := json.Marshal(changes); err == nil {
			payload = string(data)
		}
	}
	entry := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Changes:  payload,
	}
	if userID != 0 {
		entry.UserID = &userID
	}
	select {
	case r.entries <- entry:
	default:
		log.Printf("[audit] buffer full, dropping %s %s/%d", action, entity, entityID)
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for entry := range r.entries {
		if err := r.repo.Create(&entry); err != nil {
			log.Printf("[audit] write failed: %v", err)
			continue
		}
		if r.hub != nil {
			r.hub.Broadcast(entry)
		}
	}
}

// Close drains pending entries and stops the worker.
func (r *Recorder) Close() {
	close(r.entries)
	<-r.done
}
