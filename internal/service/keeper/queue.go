package keeper

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
)

// ReadyQueueKey 就绪队列的 Redis 有序集合，score 为就绪时间戳
const ReadyQueueKey = "ogre:ready"

// Entry 等待执行的提案
type Entry struct {
	DAO      common.Address
	Proposal common.Address
	Ready    uint64
}

func (e Entry) member() string {
	return e.DAO.Hex() + ":" + e.Proposal.Hex()
}

func parseMember(member string, score float64) (Entry, error) {
	dao, prop, ok := strings.Cut(member, ":")
	if !ok || !common.IsHexAddress(dao) || !common.IsHexAddress(prop) {
		return Entry{}, fmt.Errorf("malformed ready queue member %q", member)
	}
	return Entry{
		DAO:      common.HexToAddress(dao),
		Proposal: common.HexToAddress(prop),
		Ready:    uint64(score),
	}, nil
}

// ReadyQueue 已通过提案的执行队列
type ReadyQueue interface {
	Push(ctx context.Context, entry Entry) error
	// Due 就绪时间不晚于 now 的提案，按就绪时间升序
	Due(ctx context.Context, now uint64, limit int64) ([]Entry, error)
	Remove(ctx context.Context, entry Entry) error
}

// RedisReadyQueue 基于 Redis ZSET 的执行队列，多实例共享
type RedisReadyQueue struct {
	client *redis.Client
	key    string
}

func NewRedisReadyQueue(client *redis.Client) *RedisReadyQueue {
	return &RedisReadyQueue{client: client, key: ReadyQueueKey}
}

func (q *RedisReadyQueue) Push(ctx context.Context, entry Entry) error {
	if err := q.client.ZAdd(ctx, q.key, redis.Z{
		Score:  float64(entry.Ready),
		Member: entry.member(),
	}).Err(); err != nil {
		return fmt.Errorf("failed to push ready entry: %w", err)
	}
	return nil
}

func (q *RedisReadyQueue) Due(ctx context.Context, now uint64, limit int64) ([]Entry, error) {
	zs, err := q.client.ZRangeByScoreWithScores(ctx, q.key, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatUint(now, 10),
		Count: limit,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read due entries: %w", err)
	}

	entries := make([]Entry, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		entry, err := parseMember(member, z.Score)
		if err != nil {
			// 无法解析的成员直接丢弃
			q.client.ZRem(ctx, q.key, z.Member)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (q *RedisReadyQueue) Remove(ctx context.Context, entry Entry) error {
	if err := q.client.ZRem(ctx, q.key, entry.member()).Err(); err != nil {
		return fmt.Errorf("failed to remove ready entry: %w", err)
	}
	return nil
}

// MemoryReadyQueue 进程内队列，Redis 不可用时使用
type MemoryReadyQueue struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemoryReadyQueue() *MemoryReadyQueue {
	return &MemoryReadyQueue{entries: make(map[string]Entry)}
}

func (q *MemoryReadyQueue) Push(_ context.Context, entry Entry) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries[entry.member()] = entry
	return nil
}

func (q *MemoryReadyQueue) Due(_ context.Context, now uint64, limit int64) ([]Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var due []Entry
	for _, e := range q.entries {
		if e.Ready <= now {
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].Ready != due[j].Ready {
			return due[i].Ready < due[j].Ready
		}
		return due[i].member() < due[j].member()
	})
	if limit > 0 && int64(len(due)) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (q *MemoryReadyQueue) Remove(_ context.Context, entry Entry) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.entries, entry.member())
	return nil
}
