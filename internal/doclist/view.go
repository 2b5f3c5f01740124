// Package doclist implements the sortable document list view: an ordered set of
// document records rendered through a static column table, re-sorted on column
// activation, with per-row delete and reindex actions dispatched to external
// collaborators.
package doclist

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"docstatus/internal/logger"
	"docstatus/internal/model"
)

// StatusOK is the status a successful delete reports.
const StatusOK = "200"

var (
	ErrUnknownColumn   = errors.New("unknown column")
	ErrUnknownRecord   = errors.New("record not in view")
	ErrNoPendingDelete = errors.New("no delete awaiting confirmation")
	ErrViewClosed      = errors.New("view closed")
	ErrNoCollaborator  = errors.New("action not configured")
)

// DeleteResult is what the delete collaborator reports back.
type DeleteResult struct {
	Status string `json:"status"`
}

// Deleter removes the document behind a record.
type Deleter interface {
	DeleteDocument(ctx context.Context, rec model.DocumentRecord) (DeleteResult, error)
}

// EmbeddingQueue submits a record for re-embedding.
type EmbeddingQueue interface {
	PushToEmbeddingsQueue(ctx context.Context, rec model.DocumentRecord) error
}

// ActionError reports a failed row action.
type ActionError struct {
	Op     string
	Key    string
	Status string
	Err    error
}

func (e *ActionError) Error() string {
	switch {
	case e.Err != nil && e.Status != "":
		return fmt.Sprintf("%s %s: status %s: %v", e.Op, e.Key, e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
	default:
		return fmt.Sprintf("%s %s: status %s", e.Op, e.Key, e.Status)
	}
}

func (e *ActionError) Unwrap() error { return e.Err }

// Phase is the state of the delete confirmation gate.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhasePending Phase = "pending_confirmation"
)

// Options configures a View. Every field is optional.
type Options struct {
	Deleter  Deleter
	Queue    EmbeddingQueue
	// OnSorted receives the new ordering after every column activation.
	OnSorted func([]model.DocumentRecord)
	Logger   logrus.FieldLogger
	Metrics  *Metrics
	// Sort is the initial sort indicator. Records are kept in the given order.
	Sort     *SortState
}

// View is one document list instance. It is safe for concurrent use; remote
// calls run without holding the lock.
type View struct {
	mu      sync.Mutex
	records []model.DocumentRecord
	sort    SortState
	target  *model.DocumentRecord
	phase   Phase
	closed  bool

	deleter  Deleter
	queue    EmbeddingQueue
	onSorted func([]model.DocumentRecord)
	log      logrus.FieldLogger
	metrics  *Metrics
}

// New builds a view over items, displayed in the given order.
func New(items []model.DocumentRecord, opts Options) *View {
	v := &View{
		records:  slices.Clone(items),
		sort:     DefaultSort,
		phase:    PhaseIdle,
		deleter:  opts.Deleter,
		queue:    opts.Queue,
		onSorted: opts.OnSorted,
		log:      opts.Logger,
		metrics:  opts.Metrics,
	}
	if opts.Sort != nil {
		if _, ok := ColumnByKey(opts.Sort.Key); ok {
			v.sort = *opts.Sort
		}
	}
	if v.log == nil {
		v.log = logger.Discard()
	}
	return v
}

// Records returns a copy of the displayed sequence.
func (v *View) Records() []model.DocumentRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.records)
}

// Record returns the displayed record with the given key.
func (v *View) Record(key string) (model.DocumentRecord, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i := v.indexOf(key); i >= 0 {
		return v.records[i], true
	}
	return model.DocumentRecord{}, false
}

// Sort returns the current sort state.
func (v *View) Sort() SortState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sort
}

// ActivateColumn makes key the active sort column, toggling its direction, and
// re-sorts the records. The new ordering is passed to OnSorted when set.
// An unknown key leaves the view untouched.
func (v *View) ActivateColumn(key string) error {
	col, ok := ColumnByKey(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrViewClosed
	}
	v.sort = v.sort.activate(key)
	sorted := slices.Clone(v.records)
	slices.SortStableFunc(sorted, compareBy(col, v.sort.Descending))
	v.records = sorted
	state := v.sort
	v.mu.Unlock()

	v.metrics.sorted(key)
	v.log.WithFields(logrus.Fields{
		"component":  "doclist",
		"column":     key,
		"descending": state.Descending,
	}).Debug("records sorted")

	if v.onSorted == nil {
		v.log.WithField("component", "doclist").Debug("onSorted callback not set")
		return nil
	}
	v.onSorted(slices.Clone(sorted))
	return nil
}

// Invoke marks rec as the currently targeted record. A pending delete
// confirmation for a previous target is dropped.
func (v *View) Invoke(rec model.DocumentRecord) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	if v.phase == PhasePending && (v.target == nil || v.target.Key != rec.Key) {
		v.phase = PhaseIdle
	}
	r := rec
	v.target = &r
	v.log.WithFields(logrus.Fields{"component": "doclist", "key": rec.Key, "name": rec.Name}).Debug("item invoked")
}

// Target returns the currently targeted record, if any.
func (v *View) Target() (model.DocumentRecord, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.target == nil {
		return model.DocumentRecord{}, false
	}
	return *v.target, true
}

// Phase returns the state of the delete confirmation gate.
func (v *View) Phase() Phase {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase
}

// Delete asks the delete collaborator to remove rec. On a "200" status the
// record is dropped from the displayed sequence right away; any other outcome
// leaves the sequence unchanged and is returned as an *ActionError.
func (v *View) Delete(ctx context.Context, rec model.DocumentRecord) error {
	if v.deleter == nil {
		return &ActionError{Op: ActionDelete, Key: rec.Key, Err: ErrNoCollaborator}
	}
	if v.isClosed() {
		return ErrViewClosed
	}

	v.log.WithFields(logrus.Fields{"component": "doclist", "key": rec.Key, "name": rec.Name}).Info("deleting item")
	res, err := v.deleter.DeleteDocument(ctx, rec)
	if err != nil || res.Status != StatusOK {
		v.metrics.action(ActionDelete, false)
		aerr := &ActionError{Op: ActionDelete, Key: rec.Key, Status: res.Status, Err: err}
		v.log.WithFields(logrus.Fields{"component": "doclist", "key": rec.Key}).WithError(aerr).Warn("delete failed")
		return aerr
	}
	v.metrics.action(ActionDelete, true)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil
	}
	if i := v.indexOf(rec.Key); i >= 0 {
		v.records = slices.Delete(v.records, i, i+1)
	}
	if v.target != nil && v.target.Key == rec.Key {
		v.target = nil
		v.phase = PhaseIdle
	}
	return nil
}

// Reindex submits rec to the embeddings queue once.
func (v *View) Reindex(ctx context.Context, rec model.DocumentRecord) error {
	if v.queue == nil {
		return &ActionError{Op: ActionReindex, Key: rec.Key, Err: ErrNoCollaborator}
	}
	if v.isClosed() {
		return ErrViewClosed
	}

	v.log.WithFields(logrus.Fields{"component": "doclist", "key": rec.Key, "name": rec.Name}).Info("creating embeddings queue item")
	if err := v.queue.PushToEmbeddingsQueue(ctx, rec); err != nil {
		v.metrics.action(ActionReindex, false)
		aerr := &ActionError{Op: ActionReindex, Key: rec.Key, Err: err}
		v.log.WithFields(logrus.Fields{"component": "doclist", "key": rec.Key}).WithError(aerr).Warn("reindex failed")
		return aerr
	}
	v.metrics.action(ActionReindex, true)
	return nil
}

// RequestDelete targets the record with the given key and holds the delete
// until ConfirmDelete or CancelDelete.
func (v *View) RequestDelete(key string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrViewClosed
	}
	i := v.indexOf(key)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownRecord, key)
	}
	r := v.records[i]
	v.target = &r
	v.phase = PhasePending
	return nil
}

// ConfirmDelete runs the pending delete. The gate returns to idle before the
// remote call so a second confirm cannot fire it twice.
func (v *View) ConfirmDelete(ctx context.Context) error {
	v.mu.Lock()
	if v.phase != PhasePending || v.target == nil {
		v.mu.Unlock()
		return ErrNoPendingDelete
	}
	rec := *v.target
	v.phase = PhaseIdle
	v.mu.Unlock()

	return v.Delete(ctx, rec)
}

// CancelDelete drops the pending delete. The target stays selected.
func (v *View) CancelDelete() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.phase != PhasePending {
		return ErrNoPendingDelete
	}
	v.phase = PhaseIdle
	return nil
}

// Close tears the view down. Actions still in flight complete remotely but no
// longer change the view.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.phase = PhaseIdle
}

// Closed reports whether Close was called.
func (v *View) Closed() bool {
	return v.isClosed()
}

func (v *View) isClosed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

func (v *View) indexOf(key string) int {
	return slices.IndexFunc(v.records, func(r model.DocumentRecord) bool { return r.Key == key })
}
