package searchsession_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	searchsession "github.com/KirkDiggler/pokedex-api/internal/repositories/search_session"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	clock *clock.Manual
	repo  *searchsession.InMemoryRepository
	ctx   context.Context
}

func TestInMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.clock = clock.NewManual(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	repo, err := searchsession.NewInMemoryRepository(&searchsession.InMemoryConfig{
		Clock: s.clock,
		TTL:   time.Minute,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *InMemoryRepositoryTestSuite) TestNewInMemoryRepository() {
	_, err := searchsession.NewInMemoryRepository(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = searchsession.NewInMemoryRepository(&searchsession.InMemoryConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestBeginAndCurrent() {
	first, err := s.repo.Begin(s.ctx, searchsession.BeginInput{SessionID: "session_a"})
	s.Require().NoError(err)
	s.Equal(int64(1), first.Generation)

	second, err := s.repo.Begin(s.ctx, searchsession.BeginInput{SessionID: "session_a"})
	s.Require().NoError(err)
	s.Equal(int64(2), second.Generation)

	current, err := s.repo.Current(s.ctx, searchsession.CurrentInput{SessionID: "session_a"})
	s.Require().NoError(err)
	s.True(searchsession.IsStale(first.Generation, current))
	s.False(searchsession.IsStale(second.Generation, current))
}

func (s *InMemoryRepositoryTestSuite) TestExpiry() {
	_, err := s.repo.Begin(s.ctx, searchsession.BeginInput{SessionID: "session_a"})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)

	current, err := s.repo.Current(s.ctx, searchsession.CurrentInput{SessionID: "session_a"})
	s.Require().NoError(err)
	s.Equal(int64(0), current.Generation)

	restarted, err := s.repo.Begin(s.ctx, searchsession.BeginInput{SessionID: "session_a"})
	s.Require().NoError(err)
	s.Equal(int64(1), restarted.Generation)
}

func (s *InMemoryRepositoryTestSuite) TestConcurrentBegin() {
	const submissions = 50

	var wg sync.WaitGroup
	seen := make(chan int64, submissions)
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := s.repo.Begin(s.ctx, searchsession.BeginInput{SessionID: "session_a"})
			if err == nil {
				seen <- out.Generation
			}
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[int64]bool)
	for g := range seen {
		unique[g] = true
	}
	s.Len(unique, submissions)

	current, err := s.repo.Current(s.ctx, searchsession.CurrentInput{SessionID: "session_a"})
	s.Require().NoError(err)
	s.Equal(int64(submissions), current.Generation)
}

func (s *InMemoryRepositoryTestSuite) TestIsStaleNil() {
	s.False(searchsession.IsStale(3, nil))
}
