package repositories

import (
	"context"
	"errors"
	"testing"

	"finance-tracker/internal/models"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
)

func TestRedisStateRepository(t *testing.T) {
	suite.Run(t, new(RedisStateRepositorySuite))
}

type RedisStateRepositorySuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo KeyValueStoreInterface
	ctx  context.Context
}

const testKeyPrefix = "finance-tracker:"

func (s *RedisStateRepositorySuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.repo = NewRedisStateRepository(client, testKeyPrefix)
	s.ctx = context.Background()
}

func (s *RedisStateRepositorySuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *RedisStateRepositorySuite) TestGet_PrefixesKey() {
	s.mock.ExpectGet(testKeyPrefix + models.StateKeyTransactions).SetVal("[]")

	value, err := s.repo.Get(s.ctx, models.StateKeyTransactions)

	s.NoError(err)
	s.Equal("[]", value)
}

func (s *RedisStateRepositorySuite) TestGet_MissingKey() {
	s.mock.ExpectGet(testKeyPrefix + models.StateKeyTransactionHistory).RedisNil()

	_, err := s.repo.Get(s.ctx, models.StateKeyTransactionHistory)

	s.ErrorIs(err, ErrKeyNotFound)
}

func (s *RedisStateRepositorySuite) TestGet_BackendError() {
	s.mock.ExpectGet(testKeyPrefix + models.StateKeyTheme).SetErr(errors.New("connection refused"))

	_, err := s.repo.Get(s.ctx, models.StateKeyTheme)

	s.Error(err)
	s.NotErrorIs(err, ErrKeyNotFound)
	s.Contains(err.Error(), "connection refused")
}

func (s *RedisStateRepositorySuite) TestSet_NoExpiry() {
	s.mock.ExpectSet(testKeyPrefix+models.StateKeyTheme, models.ThemeDark, 0).SetVal("OK")

	s.NoError(s.repo.Set(s.ctx, models.StateKeyTheme, models.ThemeDark))
}

func (s *RedisStateRepositorySuite) TestSet_BackendError() {
	s.mock.ExpectSet(testKeyPrefix+models.StateKeyTheme, models.ThemeDark, 0).SetErr(errors.New("READONLY"))

	s.Error(s.repo.Set(s.ctx, models.StateKeyTheme, models.ThemeDark))
}

func (s *RedisStateRepositorySuite) TestDelete() {
	s.mock.ExpectDel(testKeyPrefix + models.StateKeyTransactions).SetVal(1)

	s.NoError(s.repo.Delete(s.ctx, models.StateKeyTransactions))
}

func (s *RedisStateRepositorySuite) TestPing() {
	s.mock.ExpectPing().SetVal("PONG")

	s.NoError(s.repo.Ping(s.ctx))
}
