package stream

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywiseapp/pennywise_backend/internal/core/ports/repositories"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
	"github.com/jackc/pgx/v5"
)

// notifyChannel is the Postgres channel the record-change triggers notify on.
const notifyChannel = "record_changes"

// reconnectDelay is how long the hub waits before redialing after a lost
// listen connection.
const reconnectDelay = 2 * time.Second

// Collection identifies one of the streamable record kinds.
type Collection string

const (
	CollectionTransactions Collection = "transactions"
	CollectionBudgets      Collection = "budgets"
	CollectionBills        Collection = "bills"
	CollectionGoals        Collection = "goals"
	CollectionNetWorth     Collection = "networth"
)

// ParseCollection maps a URL path segment onto a known collection.
func ParseCollection(s string) (Collection, bool) {
	switch Collection(s) {
	case CollectionTransactions, CollectionBudgets, CollectionBills, CollectionGoals, CollectionNetWorth:
		return Collection(s), true
	default:
		return "", false
	}
}

// notification is the JSON payload written by the notify_record_change trigger.
type notification struct {
	OwnerID    string `json:"owner_id"`
	Collection string `json:"collection"`
}

// Snapshot carries the full current record list for one owner and collection.
// Every push is a complete snapshot, so a subscriber that misses intermediate
// updates still converges on the latest state.
type Snapshot struct {
	Collection Collection `json:"collection"`
	Records    any        `json:"records"`
}

type subscriber struct {
	ownerID    string
	collection Collection
	ch         chan Snapshot
}

// push delivers a snapshot without blocking. When the subscriber's buffer is
// full the stale snapshot is dropped in favour of the new one.
func (s *subscriber) push(snap Snapshot) {
	for {
		select {
		case s.ch <- snap:
			return
		default:
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

// Hub fans out record-change notifications from Postgres to in-process
// subscribers. It holds one dedicated LISTEN connection; snapshot reads go
// through the regular repository pool.
type Hub struct {
	connString string
	repos      portsrepo.RepositoryProvider
	logger     *slog.Logger

	mu   sync.Mutex
	subs map[*subscriber]struct{}
}

// NewHub creates a hub that listens on connString and reads snapshots through repos.
func NewHub(connString string, repos portsrepo.RepositoryProvider, logger *slog.Logger) *Hub {
	return &Hub{
		connString: connString,
		repos:      repos,
		logger:     logger,
		subs:       make(map[*subscriber]struct{}),
	}
}

// Subscribe registers a listener for one owner's collection. The current
// snapshot is queued immediately so the subscriber never starts empty. The
// returned func must be called to release the subscription.
func (h *Hub) Subscribe(ctx context.Context, ownerID string, collection Collection) (<-chan Snapshot, func(), error) {
	snap, err := h.loadSnapshot(ctx, ownerID, collection)
	if err != nil {
		return nil, nil, err
	}

	sub := &subscriber{
		ownerID:    ownerID,
		collection: collection,
		ch:         make(chan Snapshot, 1),
	}
	sub.ch <- snap

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		delete(h.subs, sub)
		h.mu.Unlock()
	}
	return sub.ch, unsubscribe, nil
}

// Run listens for record-change notifications until ctx is cancelled,
// redialing the LISTEN connection after transient failures.
func (h *Hub) Run(ctx context.Context) {
	for {
		err := h.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		h.logger.Error("Record stream listener lost, reconnecting", slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (h *Hub) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, h.connString)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return err
	}
	h.logger.Info("Record stream listening", slog.String("channel", notifyChannel))

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var note notification
		if err := json.Unmarshal([]byte(n.Payload), &note); err != nil {
			h.logger.Warn("Dropping malformed record change payload", slog.String("payload", n.Payload))
			continue
		}
		h.dispatch(ctx, note)
	}
}

func (h *Hub) dispatch(ctx context.Context, note notification) {
	collection, ok := ParseCollection(note.Collection)
	if !ok {
		h.logger.Warn("Dropping record change for unknown collection", slog.String("collection", note.Collection))
		return
	}

	targets := h.subscribersFor(note.OwnerID, collection)
	if len(targets) == 0 {
		return
	}

	// One snapshot read serves every subscriber of this owner+collection.
	snap, err := h.loadSnapshot(ctx, note.OwnerID, collection)
	if err != nil {
		h.logger.Error("Failed to load snapshot for record change",
			slog.String("collection", string(collection)),
			slog.String("error", err.Error()),
		)
		return
	}
	for _, sub := range targets {
		sub.push(snap)
	}
}

func (h *Hub) subscribersFor(ownerID string, collection Collection) []*subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	var targets []*subscriber
	for sub := range h.subs {
		if sub.ownerID == ownerID && sub.collection == collection {
			targets = append(targets, sub)
		}
	}
	return targets
}

func (h *Hub) loadSnapshot(ctx context.Context, ownerID string, collection Collection) (Snapshot, error) {
	var records any
	var err error

	switch collection {
	case CollectionTransactions:
		var txns []domain.Transaction
		txns, err = h.repos.TransactionRepo.ListTransactions(ctx, ownerID, domain.TransactionFilter{})
		records = dto.ToListTransactionResponse(txns)
	case CollectionBudgets:
		var budgets []domain.Budget
		budgets, err = h.repos.BudgetRepo.ListBudgets(ctx, ownerID)
		records = dto.ToListBudgetResponse(budgets)
	case CollectionBills:
		var bills []domain.Bill
		bills, err = h.repos.BillRepo.ListBills(ctx, ownerID)
		records = dto.ToListBillResponse(bills)
	case CollectionGoals:
		var goals []domain.Goal
		goals, err = h.repos.GoalRepo.ListGoals(ctx, ownerID)
		records = dto.ToListGoalResponse(goals)
	case CollectionNetWorth:
		var entries []domain.NetWorthEntry
		entries, err = h.repos.NetWorthRepo.ListNetWorthEntries(ctx, ownerID)
		records = dto.ToListNetWorthEntryResponse(entries)
	}
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Collection: collection, Records: records}, nil
}
