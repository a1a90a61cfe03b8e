package nodestatus

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/YukihitoTomojiri/medical-wiki-lms/internal/shared/clock"
)

const (
	nodesKey     = "nodestatus:nodes"
	lastSeenKey  = "nodestatus:last_seen:"
	onlineWindow = 5 * time.Minute
	idleWindow   = 30 * time.Minute
)

const (
	StatusOnline  = "ONLINE"
	StatusIdle    = "IDLE"
	StatusOffline = "OFFLINE"
)

type NodeStatus struct {
	Node     string  `json:"node"`
	Status   string  `json:"status"`
	LastSeen *string `json:"last_seen,omitempty"`
}

//go:generate mockgen -source=nodestatus_service.go -destination=mock/nodestatus_service_mock.go -package=mock
type Service interface {
	Board(ctx context.Context) ([]NodeStatus, error)
}

type service struct {
	rdb    *redis.Client
	clock  clock.Clock
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(rdb *redis.Client, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("nodestatus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("nodestatus.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{rdb: rdb, clock: clk, logger: l}
}

// Board collapses concurrent requests into one redis round trip.
func (s *service) Board(ctx context.Context) ([]NodeStatus, error) {
	result, err, _ := s.group.Do("board", func() (any, error) {
		return s.buildBoard(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.([]NodeStatus), nil
}

func (s *service) buildBoard(ctx context.Context) ([]NodeStatus, error) {
	nodes, err := s.rdb.SMembers(ctx, nodesKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(nodes)

	now := s.clock.Now()
	board := make([]NodeStatus, 0, len(nodes))
	for _, node := range nodes {
		entry := NodeStatus{Node: node, Status: StatusOffline}

		raw, err := s.rdb.Get(ctx, lastSeenKey+node).Result()
		if err == nil {
			if lastSeen, parseErr := time.Parse(time.RFC3339, raw); parseErr == nil {
				entry.LastSeen = &raw
				age := now.Sub(lastSeen)
				switch {
				case age <= onlineWindow:
					entry.Status = StatusOnline
				case age <= idleWindow:
					entry.Status = StatusIdle
				}
			}
		} else if err != redis.Nil {
			return nil, err
		}

		board = append(board, entry)
	}
	return board, nil
}
