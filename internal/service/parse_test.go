package service

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/aicharts/backend/internal/config"
	"github.com/aicharts/backend/internal/models"
	"github.com/aicharts/backend/internal/pool"
	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	entries map[string]string
	sets    int
}

func (f *fakeCache) Get(_ context.Context, key string) (string, bool, error) {
	val, ok := f.entries[key]
	return val, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string) error {
	f.sets++
	f.entries[key] = value
	return nil
}

func newTestService(c Cache) *ParseService {
	svc := NewParseService(
		log.New(io.Discard, "", 0),
		openai.Client{},
		config.OpenAIConfig{Model: "test-model"},
		pool.New(1),
	)
	if c != nil {
		svc.SetCacheClient(c)
	}
	return svc
}

func TestParse_ServedFromCache(t *testing.T) {
	cached := `{"title":"T","data":[]}`
	c := &fakeCache{entries: map[string]string{
		getCacheKey("pie", "market share"): cached,
	}}

	resp, err := newTestService(c).Parse(context.Background(), &models.ChartRequest{
		Prompt:    "market share",
		ChartType: "pie",
	})

	require.NoError(t, err)
	assert.Equal(t, cached, resp.Response)
	assert.Zero(t, c.sets)
}

// An unset chart type is treated as "default" everywhere, including cache
// keying.
func TestParse_EmptyChartTypeNormalizedToDefault(t *testing.T) {
	cached := "generic completion"
	c := &fakeCache{entries: map[string]string{
		getCacheKey(ChartDefault, "anything"): cached,
	}}

	resp, err := newTestService(c).Parse(context.Background(), &models.ChartRequest{
		Prompt: "anything",
	})

	require.NoError(t, err)
	assert.Equal(t, cached, resp.Response)
}

func TestGetCacheKey_DistinguishesTypeAndPrompt(t *testing.T) {
	base := getCacheKey("bar", "sales")
	assert.NotEqual(t, base, getCacheKey("pie", "sales"))
	assert.NotEqual(t, base, getCacheKey("bar", "revenue"))
	assert.Equal(t, base, getCacheKey("bar", "sales"))
}
