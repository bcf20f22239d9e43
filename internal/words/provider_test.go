package words

import (
	"testing"

	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/random"
	randomMocks "github.com/KirkDiggler/imposter/internal/random/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCatalog = `{
	"easy":   [{"word": "apple", "imposter_hint": "fruit"}, {"word": "dog", "imposter_hint": "pet"}],
	"medium": [{"word": "volcano", "imposter_hint": "mountain"}],
	"hard":   [{"word": "mirage", "imposter_hint": "desert"}]
}`

func TestNew_EmbeddedCatalogLoads(t *testing.T) {
	c, err := New(&Config{Random: random.New(&random.Config{Seed: 1})})
	require.NoError(t, err)

	for _, tier := range models.Tiers() {
		assert.Positive(t, c.Size(tier), tier)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{})
	assert.Error(t, err)

	_, err = New(&Config{Random: random.New(nil), Data: []byte(`{"easy": []}`)})
	assert.Error(t, err)

	_, err = New(&Config{Random: random.New(nil), Data: []byte(`not json`)})
	assert.Error(t, err)
}

func TestPickWord_FromTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := randomMocks.NewMockSource(ctrl)
	src.EXPECT().Intn(2).Return(1)

	c, err := New(&Config{Random: src, Data: []byte(testCatalog)})
	require.NoError(t, err)

	assert.Equal(t, models.WordPair{Word: "dog", ImposterHint: "pet"}, c.PickWord(models.DifficultyEasy))
}

func TestPickWord_RandomPicksTierFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := randomMocks.NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Intn(3).Return(2),
		src.EXPECT().Intn(1).Return(0),
	)

	c, err := New(&Config{Random: src, Data: []byte(testCatalog)})
	require.NoError(t, err)

	assert.Equal(t, "mirage", c.PickWord(models.DifficultyRandom).Word)
}
