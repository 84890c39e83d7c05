package accounts

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"dialdesk/pkg/utils"
)

// OTPStore keeps one outstanding password-reset code per email. A new Put
// supersedes any prior code for the same address.
type OTPStore interface {
	Put(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, bool, error)
	Delete(ctx context.Context, email string) error
	// AllowRequest throttles how often an address can request a new code.
	AllowRequest(ctx context.Context, email string) (bool, error)
}

const (
	otpTTL = 10 * time.Minute

	otpRequestLimit  = 5
	otpRequestWindow = 10 * time.Minute
)

type RedisOTPStore struct {
	rdb *redis.Client
}

func NewRedisOTPStore(rdb *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{rdb: rdb}
}

func otpKey(email string) string  { return "otp:" + email }
func rateKey(email string) string { return "otp_req:" + email }

func (s *RedisOTPStore) Put(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return errors.New("email and code are required")
	}
	return s.rdb.Set(ctx, otpKey(email), code, otpTTL).Err()
}

func (s *RedisOTPStore) Get(ctx context.Context, email string) (string, bool, error) {
	code, err := s.rdb.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return code, true, nil
}

func (s *RedisOTPStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, otpKey(email)).Err()
}

func (s *RedisOTPStore) AllowRequest(ctx context.Context, email string) (bool, error) {
	return utils.AllowRate(ctx, s.rdb, rateKey(email), otpRequestLimit, otpRequestWindow)
}

// MemoryOTPStore backs tests; time-based expiry is checked on read.
type MemoryOTPStore struct {
	mu sync.Mutex

	codes    map[string]memoryOTP
	requests map[string]int
	clock    func() time.Time
}

type memoryOTP struct {
	code      string
	expiresAt time.Time
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		codes:    map[string]memoryOTP{},
		requests: map[string]int{},
		clock:    time.Now,
	}
}

func (s *MemoryOTPStore) Put(ctx context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = memoryOTP{code: code, expiresAt: s.clock().Add(otpTTL)}
	return nil
}

func (s *MemoryOTPStore) Get(ctx context.Context, email string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.codes[email]
	if !ok || s.clock().After(entry.expiresAt) {
		delete(s.codes, email)
		return "", false, nil
	}
	return entry.code, true, nil
}

func (s *MemoryOTPStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
	return nil
}

func (s *MemoryOTPStore) AllowRequest(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[email]++
	return s.requests[email] <= otpRequestLimit, nil
}
