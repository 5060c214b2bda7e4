package pokedex_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	pokeapimock "github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokemon"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
	searchsession "github.com/KirkDiggler/pokedex-api/internal/repositories/search_session"
	searchsessionmock "github.com/KirkDiggler/pokedex-api/internal/repositories/search_session/mock"
	"github.com/KirkDiggler/pokedex-api/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctrl            *gomock.Controller
	mockClient      *pokeapimock.MockClient
	mockSessionRepo *searchsessionmock.MockRepository
	orchestrator    pokedex.Service
	ctx             context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.mockSessionRepo = searchsessionmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = pokedex.NewOrchestrator(&pokedex.Config{
		Client:      s.mockClient,
		SessionRepo: s.mockSessionRepo,
		IDGenerator: idgen.NewSequential("req"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func moveRefs(names ...string) []pokemon.MoveRef {
	refs := make([]pokemon.MoveRef, 0, len(names))
	for _, n := range names {
		refs = append(refs, pokemon.MoveRef{Name: n, URL: "https://pokeapi.test/move/" + n + "/"})
	}
	return refs
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	testCases := []struct {
		name    string
		cfg     *pokedex.Config
		wantErr string
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: "config is required",
		},
		{
			name:    "missing client",
			cfg:     &pokedex.Config{SessionRepo: s.mockSessionRepo, IDGenerator: idgen.NewSequential("")},
			wantErr: "Client: is required",
		},
		{
			name:    "missing session repo",
			cfg:     &pokedex.Config{Client: s.mockClient, IDGenerator: idgen.NewSequential("")},
			wantErr: "SessionRepo: is required",
		},
		{
			name:    "missing id generator",
			cfg:     &pokedex.Config{Client: s.mockClient, SessionRepo: s.mockSessionRepo},
			wantErr: "IDGenerator: is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := pokedex.NewOrchestrator(tc.cfg)
			s.Nil(svc)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}

func (s *OrchestratorTestSuite) TestNormalizeQuery() {
	s.Equal("pikachu", pokedex.NormalizeQuery("  PiKaChU \t"))
	s.Equal("25", pokedex.NormalizeQuery("25"))
	s.Equal("", pokedex.NormalizeQuery("   "))
}

func (s *OrchestratorTestSuite) TestFetchPokemon() {
	s.Run("normalizes before lookup", func() {
		expected := &pokemon.Pokemon{ID: 25, Name: "pikachu"}
		s.mockClient.EXPECT().GetPokemon(gomock.Any(), "pikachu").Return(expected, nil)

		out, err := s.orchestrator.FetchPokemon(s.ctx, &pokedex.FetchPokemonInput{Query: "  Pikachu "})
		s.Require().NoError(err)
		s.Equal(expected, out.Pokemon)
	})

	s.Run("not found keeps the raw query", func() {
		s.mockClient.EXPECT().GetPokemon(gomock.Any(), "notarealcreature").
			Return(nil, errors.NotFound("status 404"))

		out, err := s.orchestrator.FetchPokemon(s.ctx, &pokedex.FetchPokemonInput{Query: "NotARealCreature"})
		s.Nil(out)
		s.True(errors.IsNotFound(err))
		s.Equal(`could not find pokemon: "NotARealCreature"`, errors.GetMessage(err))
	})

	s.Run("not found message is verbatim", func() {
		s.mockClient.EXPECT().GetPokemon(gomock.Any(), `mr. "mime"`).
			Return(nil, errors.NotFound("status 404"))

		_, err := s.orchestrator.FetchPokemon(s.ctx, &pokedex.FetchPokemonInput{Query: ` Mr. "Mime"`})
		s.Equal(`could not find pokemon: " Mr. "Mime""`, errors.GetMessage(err))
	})

	s.Run("transport failure is unavailable", func() {
		s.mockClient.EXPECT().GetPokemon(gomock.Any(), "pikachu").
			Return(nil, errors.Unavailable("dial tcp: refused").WithReason(errors.ReasonTransport))

		_, err := s.orchestrator.FetchPokemon(s.ctx, &pokedex.FetchPokemonInput{Query: "pikachu"})
		s.True(errors.IsUnavailable(err))
		s.Equal(errors.ReasonTransport, errors.GetReason(err))
	})

	s.Run("empty query never reaches the client", func() {
		_, err := s.orchestrator.FetchPokemon(s.ctx, &pokedex.FetchPokemonInput{Query: "   "})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil input", func() {
		_, err := s.orchestrator.FetchPokemon(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestAggregateMovesKeepsOrderUnderOutOfOrderCompletion() {
	refs := moveRefs("a", "b", "c", "d")
	delays := map[string]time.Duration{
		refs[0].URL: 30 * time.Millisecond,
		refs[1].URL: 10 * time.Millisecond,
		refs[2].URL: 40 * time.Millisecond,
		refs[3].URL: 0,
	}

	var mu sync.Mutex
	var completed []string
	for _, ref := range refs {
		ref := ref
		s.mockClient.EXPECT().GetMove(gomock.Any(), ref.URL).
			DoAndReturn(func(_ context.Context, url string) (*pokemon.Move, error) {
				time.Sleep(delays[url])
				mu.Lock()
				completed = append(completed, ref.Name)
				mu.Unlock()
				return &pokemon.Move{Name: ref.Name, Type: "normal"}, nil
			})
	}

	out, err := s.orchestrator.AggregateMoves(s.ctx, &pokedex.AggregateMovesInput{
		Pokemon: &pokemon.Pokemon{Name: "eevee", MoveRefs: refs},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Pokemon.Moves, 4)
	for i, ref := range refs {
		s.Equal(ref.Name, out.Pokemon.Moves[i].Name)
	}
	s.NotEqual([]string{"a", "b", "c", "d"}, completed)
}

func (s *OrchestratorTestSuite) TestAggregateMovesCapsAtFour() {
	refs := moveRefs("mega-punch", "pay-day", "thunder-punch", "slam", "double-kick", "thunderbolt")
	for _, ref := range refs[:pokedex.MaxMoveDetails] {
		s.mockClient.EXPECT().GetMove(gomock.Any(), ref.URL).
			Return(&pokemon.Move{Name: ref.Name}, nil)
	}

	p := &pokemon.Pokemon{Name: "pikachu", MoveRefs: refs}
	out, err := s.orchestrator.AggregateMoves(s.ctx, &pokedex.AggregateMovesInput{Pokemon: p})
	s.Require().NoError(err)
	s.Require().Len(out.Pokemon.Moves, 4)
	s.Equal("mega-punch", out.Pokemon.Moves[0].Name)
	s.Equal("slam", out.Pokemon.Moves[3].Name)
	s.Same(p, out.Pokemon.Pokemon)
}

func (s *OrchestratorTestSuite) TestAggregateMovesFewerThanFour() {
	refs := moveRefs("transform", "growl")
	mocks.ExpectMoves(s.mockClient, refs, &pokemon.Move{Name: "transform"}, &pokemon.Move{Name: "growl"})

	out, err := s.orchestrator.AggregateMoves(s.ctx, &pokedex.AggregateMovesInput{
		Pokemon: &pokemon.Pokemon{Name: "ditto", MoveRefs: refs},
	})
	s.Require().NoError(err)
	s.Len(out.Pokemon.Moves, 2)
}

func (s *OrchestratorTestSuite) TestAggregateMovesNoMoves() {
	out, err := s.orchestrator.AggregateMoves(s.ctx, &pokedex.AggregateMovesInput{
		Pokemon: &pokemon.Pokemon{Name: "unown"},
	})
	s.Require().NoError(err)
	s.NotNil(out.Pokemon.Moves)
	s.Empty(out.Pokemon.Moves)
}

func (s *OrchestratorTestSuite) TestAggregateMovesAllOrNothing() {
	refs := moveRefs("a", "b", "c", "d")
	s.mockClient.EXPECT().GetMove(gomock.Any(), refs[0].URL).Return(&pokemon.Move{Name: "a"}, nil)
	s.mockClient.EXPECT().GetMove(gomock.Any(), refs[1].URL).Return(&pokemon.Move{Name: "b"}, nil)
	s.mockClient.EXPECT().GetMove(gomock.Any(), refs[2].URL).
		Return(nil, errors.Unavailable("status 500").WithReason(errors.ReasonStatus))
	s.mockClient.EXPECT().GetMove(gomock.Any(), refs[3].URL).Return(&pokemon.Move{Name: "d"}, nil)

	out, err := s.orchestrator.AggregateMoves(s.ctx, &pokedex.AggregateMovesInput{
		Pokemon: &pokemon.Pokemon{Name: "eevee", MoveRefs: refs},
	})
	s.Nil(out)
	s.True(errors.IsUnavailable(err))
	s.Equal(errors.ReasonAggregate, errors.GetReason(err))
}

func (s *OrchestratorTestSuite) TestAggregateMovesFailureCancelsSiblings() {
	refs := moveRefs("fails", "waits")
	canceled := make(chan struct{})

	s.mockClient.EXPECT().GetMove(gomock.Any(), refs[0].URL).
		Return(nil, errors.Unavailable("connection reset").WithReason(errors.ReasonTransport))
	s.mockClient.EXPECT().GetMove(gomock.Any(), refs[1].URL).
		DoAndReturn(func(ctx context.Context, _ string) (*pokemon.Move, error) {
			select {
			case <-ctx.Done():
				close(canceled)
				return nil, errors.New(errors.CodeCanceled, "canceled")
			case <-time.After(time.Second):
				return &pokemon.Move{Name: "waits"}, nil
			}
		})

	_, err := s.orchestrator.AggregateMoves(s.ctx, &pokedex.AggregateMovesInput{
		Pokemon: &pokemon.Pokemon{Name: "eevee", MoveRefs: refs},
	})
	s.True(errors.IsUnavailable(err))

	select {
	case <-canceled:
	default:
		s.Fail("sibling lookup was not canceled")
	}
}

func (s *OrchestratorTestSuite) TestAggregateMovesNilPokemon() {
	_, err := s.orchestrator.AggregateMoves(s.ctx, &pokedex.AggregateMovesInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSearchEmptyQuery() {
	for _, q := range []string{"", "   ", "\t\n"} {
		out, err := s.orchestrator.Search(s.ctx, &pokedex.SearchInput{SessionID: "screen-1", Query: q})
		s.Nil(out)
		s.True(errors.IsInvalidArgument(err))
		s.Equal(pokedex.MsgEmptyQuery, errors.GetMessage(err))
	}
}

func (s *OrchestratorTestSuite) TestSearchWithoutSession() {
	p := &pokemon.Pokemon{Name: "ditto", MoveRefs: moveRefs("transform")}
	mocks.ExpectLookup(s.mockClient, "ditto", p, &pokemon.Move{Name: "transform"})

	out, err := s.orchestrator.Search(s.ctx, &pokedex.SearchInput{Query: "Ditto"})
	s.Require().NoError(err)
	s.Equal(int64(0), out.Generation)
	s.Equal("req_1", out.RequestID)
	s.Equal("ditto", out.Pokemon.Pokemon.Name)
	s.Len(out.Pokemon.Moves, 1)
}

func (s *OrchestratorTestSuite) TestSearchWithSession() {
	p := &pokemon.Pokemon{Name: "unown"}
	s.mockSessionRepo.EXPECT().Begin(gomock.Any(), searchsession.BeginInput{SessionID: "screen-1"}).
		Return(&searchsession.BeginOutput{Generation: 3}, nil)
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "unown").Return(p, nil)
	s.mockSessionRepo.EXPECT().Current(gomock.Any(), searchsession.CurrentInput{SessionID: "screen-1"}).
		Return(&searchsession.CurrentOutput{Generation: 3}, nil)

	out, err := s.orchestrator.Search(s.ctx, &pokedex.SearchInput{SessionID: "screen-1", Query: "unown"})
	s.Require().NoError(err)
	s.Equal(int64(3), out.Generation)
	s.Empty(out.Pokemon.Moves)
}

func (s *OrchestratorTestSuite) TestSearchSuperseded() {
	s.mockSessionRepo.EXPECT().Begin(gomock.Any(), gomock.Any()).
		Return(&searchsession.BeginOutput{Generation: 1}, nil)
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "unown").Return(&pokemon.Pokemon{Name: "unown"}, nil)
	s.mockSessionRepo.EXPECT().Current(gomock.Any(), gomock.Any()).
		Return(&searchsession.CurrentOutput{Generation: 2}, nil)

	out, err := s.orchestrator.Search(s.ctx, &pokedex.SearchInput{SessionID: "screen-1", Query: "unown"})
	s.Nil(out)
	s.True(errors.IsAborted(err))
	s.Equal(pokedex.MsgSuperseded, errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestSearchSupersededFailureIsAborted() {
	s.mockSessionRepo.EXPECT().Begin(gomock.Any(), gomock.Any()).
		Return(&searchsession.BeginOutput{Generation: 1}, nil)
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "missingno").Return(nil, errors.NotFound("status 404"))
	s.mockSessionRepo.EXPECT().Current(gomock.Any(), gomock.Any()).
		Return(&searchsession.CurrentOutput{Generation: 5}, nil)

	_, err := s.orchestrator.Search(s.ctx, &pokedex.SearchInput{SessionID: "screen-1", Query: "missingno"})
	s.True(errors.IsAborted(err))
}

func (s *OrchestratorTestSuite) TestSearchFailureInLatestGeneration() {
	s.mockSessionRepo.EXPECT().Begin(gomock.Any(), gomock.Any()).
		Return(&searchsession.BeginOutput{Generation: 1}, nil)
	s.mockClient.EXPECT().GetPokemon(gomock.Any(), "missingno").Return(nil, errors.NotFound("status 404"))
	s.mockSessionRepo.EXPECT().Current(gomock.Any(), gomock.Any()).
		Return(&searchsession.CurrentOutput{Generation: 1}, nil)

	_, err := s.orchestrator.Search(s.ctx, &pokedex.SearchInput{SessionID: "screen-1", Query: "MissingNo"})
	s.True(errors.IsNotFound(err))
	s.Contains(errors.GetMessage(err), `"MissingNo"`)
}

func (s *OrchestratorTestSuite) TestSearchBeginFailure() {
	s.mockSessionRepo.EXPECT().Begin(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.Search(s.ctx, &pokedex.SearchInput{SessionID: "screen-1", Query: "pikachu"})
	s.True(errors.IsUnavailable(err))
}
