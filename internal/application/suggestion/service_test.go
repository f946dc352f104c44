package suggestion

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pantrysage/v2/internal/domain/dietary"
	"github.com/pantrysage/v2/internal/domain/suggestion"
	"github.com/pantrysage/v2/internal/domain/user"
	"github.com/pantrysage/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrysage/v2/internal/ports/inbound"
	"github.com/pantrysage/v2/internal/ports/outbound"
)

type fakeGenerator struct {
	lastReq     outbound.SuggestionRequest
	suggestions []suggestion.Suggestion
	err         error
}

func (f *fakeGenerator) GenerateSuggestions(ctx context.Context, req outbound.SuggestionRequest) ([]suggestion.Suggestion, error) {
	f.lastReq = req
	return f.suggestions, f.err
}

func TestSuggestFromPantry(t *testing.T) {
	users := memory.NewUserRepository()
	pantryRepo := memory.NewPantryRepository()
	gen := &fakeGenerator{
		suggestions: []suggestion.Suggestion{
			{Title: "Fried Rice", MatchType: suggestion.MatchFull, InventoryMatch: 95},
			{Title: "Pad Thai", MatchType: suggestion.MatchPartial, InventoryMatch: 60},
		},
	}
	svc := NewService(gen, pantryRepo, users, memory.NewSuggestionLogRepository(), nil, zap.NewNop())
	ctx := context.Background()

	u, err := user.New("ana@example.com", "Ana")
	require.NoError(t, err)
	u.AddAllergy(dietary.AllergenPeanuts)
	require.NoError(t, users.Create(ctx, u))

	ranked, err := svc.SuggestFromPantry(ctx, inbound.SuggestCommand{OwnerID: u.ID()})
	require.NoError(t, err)

	require.Len(t, ranked.ReadyNow, 1)
	require.Len(t, ranked.AlmostMakeable, 1)
	assert.Equal(t, "Fried Rice", ranked.ReadyNow[0].Title)

	// The generator sees the user's allergies and a default cap.
	assert.Equal(t, []string{"Peanuts"}, gen.lastReq.Allergies)
	assert.Equal(t, DefaultMaxSuggestions, gen.lastReq.MaxSuggestions)
}

func TestSuggestServesCachedPayload(t *testing.T) {
	users := memory.NewUserRepository()
	gen := &fakeGenerator{
		suggestions: []suggestion.Suggestion{
			{Title: "Omelette", MatchType: suggestion.MatchFull, InventoryMatch: 80},
		},
	}
	svc := NewService(gen, memory.NewPantryRepository(), users, memory.NewSuggestionLogRepository(), memory.NewCacheRepository(), zap.NewNop())
	ctx := context.Background()

	u, err := user.New("ben@example.com", "Ben")
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, u))

	cmd := inbound.SuggestCommand{OwnerID: u.ID()}
	first, err := svc.SuggestFromPantry(ctx, cmd)
	require.NoError(t, err)

	// The second call must not reach the generator again.
	gen.suggestions = nil
	second, err := svc.SuggestFromPantry(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, first.ReadyNow, second.ReadyNow)
	require.Len(t, second.ReadyNow, 1)
	assert.Equal(t, "Omelette", second.ReadyNow[0].Title)
}

func TestSuggestRecordsHistory(t *testing.T) {
	users := memory.NewUserRepository()
	logRepo := memory.NewSuggestionLogRepository()
	gen := &fakeGenerator{
		suggestions: []suggestion.Suggestion{
			{Title: "Minestrone", MatchType: suggestion.MatchPartial, InventoryMatch: 55},
		},
	}
	svc := NewService(gen, memory.NewPantryRepository(), users, logRepo, nil, zap.NewNop())
	ctx := context.Background()

	u, err := user.New("cam@example.com", "Cam")
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, u))

	_, err = svc.SuggestFromPantry(ctx, inbound.SuggestCommand{OwnerID: u.ID()})
	require.NoError(t, err)

	entries, err := svc.ListHistory(ctx, u.ID(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, u.ID(), entries[0].OwnerID)
	require.Len(t, entries[0].Suggestions, 1)
	assert.Equal(t, "Minestrone", entries[0].Suggestions[0].Title)

	// Another owner sees nothing.
	other, err := svc.ListHistory(ctx, uuid.New(), 10)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSuggestUnknownUser(t *testing.T) {
	svc := NewService(&fakeGenerator{}, memory.NewPantryRepository(), memory.NewUserRepository(), nil, nil, zap.NewNop())

	_, err := svc.SuggestFromPantry(context.Background(), inbound.SuggestCommand{OwnerID: uuid.New()})
	require.Error(t, err)
}

func TestSuggestDisabled(t *testing.T) {
	svc := NewService(nil, memory.NewPantryRepository(), memory.NewUserRepository(), nil, nil, zap.NewNop())

	_, err := svc.SuggestFromPantry(context.Background(), inbound.SuggestCommand{OwnerID: uuid.New()})
	require.Error(t, err)
}
