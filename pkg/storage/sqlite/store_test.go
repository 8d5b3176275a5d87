package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fadedpez/onexrace/pkg/storage"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	path  string
	store *Store
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "data", "onexrace.db")

	store, err := Open(s.path)
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreTestSuite) TearDownTest() {
	s.store.Close()
}

func (s *StoreTestSuite) TestSetGetDelete() {
	ctx := context.Background()

	_, err := s.store.Get(ctx, storage.KeyCoins)
	s.ErrorIs(err, storage.ErrKeyNotFound)

	s.Require().NoError(s.store.Set(ctx, storage.KeyCoins, []byte(`1000`)))
	s.Require().NoError(s.store.Set(ctx, storage.KeyCoins, []byte(`900`)))

	value, err := s.store.Get(ctx, storage.KeyCoins)
	s.Require().NoError(err)
	s.Equal(`900`, string(value))

	s.Require().NoError(s.store.Delete(ctx, storage.KeyCoins))
	_, err = s.store.Get(ctx, storage.KeyCoins)
	s.ErrorIs(err, storage.ErrKeyNotFound)
}

func (s *StoreTestSuite) TestSnapshotSurvivesReopen() {
	ctx := context.Background()

	snap := storage.NewSnapshot()
	snap.Coins = 2500
	snap.IsFirstLaunch = false
	snap.UnlockedStories = []int{0, 3}
	snap.Achievements = []storage.AchievementRecord{{ID: 8, IsUnlocked: true}}
	s.Require().NoError(storage.SaveSnapshot(ctx, s.store, snap))
	s.Require().NoError(s.store.Close())

	reopened, err := Open(s.path)
	s.Require().NoError(err)
	s.store = reopened

	loaded, err := storage.LoadSnapshot(ctx, reopened)
	s.Require().NoError(err)
	s.Equal(int64(2500), loaded.Coins)
	s.False(loaded.IsFirstLaunch)
	s.Equal([]int{0, 3}, loaded.UnlockedStories)
	s.Equal(snap.Achievements, loaded.Achievements)
}
