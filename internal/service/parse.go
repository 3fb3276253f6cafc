package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/aicharts/backend/internal/config"
	"github.com/aicharts/backend/internal/metrics"
	"github.com/aicharts/backend/internal/models"
	"github.com/aicharts/backend/internal/pool"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

// ParseService turns a chart request into a templated prompt, runs it through
// the model under a pool slot, and hands the completion text back untouched.
type ParseService struct {
	logger       *log.Logger
	openaiClient openai.Client
	modelName    string
	pool         *pool.Pool
	cache        Cache
}

func NewParseService(logger *log.Logger, openaiClient openai.Client, cfg config.OpenAIConfig, p *pool.Pool) *ParseService {
	return &ParseService{
		logger:       logger,
		openaiClient: openaiClient,
		modelName:    cfg.Model,
		pool:         p,
	}
}

func (s *ParseService) SetCacheClient(cache Cache) {
	s.cache = cache
}

func (s *ParseService) Parse(ctx context.Context, req *models.ChartRequest) (*models.ChartResponse, error) {
	chartType := req.ChartType
	if chartType == "" {
		chartType = ChartDefault
	}

	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx, getCacheKey(chartType, req.Prompt))
		if err != nil {
			s.logger.Printf("cache get error: %v\n", err)
		}
		if found {
			s.logger.Printf("served from cache for chart type: %s\n", chartType)
			metrics.ChartRequest(chartType, "cached")
			return &models.ChartResponse{Response: cached}, nil
		}
	}

	formatted := Render(chartType, req.Prompt)

	text, err := s.complete(ctx, chartType, formatted)
	if err != nil {
		metrics.ChartRequest(chartType, "error")
		return nil, err
	}
	metrics.ChartRequest(chartType, "success")

	if s.cache != nil {
		if err := s.cache.Set(ctx, getCacheKey(chartType, req.Prompt), text); err != nil {
			s.logger.Printf("failed to set cache: %v\n", err)
		}
	}

	s.logger.Printf("processed request for chart type: %s\n", chartType)
	s.logger.Printf("response: %s\n", text)
	return &models.ChartResponse{Response: text}, nil
}

// complete runs the blocking completion call under a pool slot. Requests over
// capacity wait here until a slot frees; only context expiry interrupts the
// wait.
func (s *ParseService) complete(ctx context.Context, chartType, formatted string) (string, error) {
	metrics.PoolWaitStarted()
	release, err := s.pool.Acquire(ctx)
	metrics.PoolWaitEnded()
	if err != nil {
		return "", fmt.Errorf("waiting for inference slot: %w", err)
	}
	metrics.PoolSlotAcquired()
	defer func() {
		release()
		metrics.PoolSlotReleased()
	}()

	start := time.Now()
	resp, err := s.openaiClient.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(s.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(""),
			openai.UserMessage(formatted),
		},
	})
	metrics.InferenceDuration(chartType, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("completion error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func getCacheKey(chartType, prompt string) string {
	hash := sha256.Sum256([]byte(strings.Join([]string{chartType, prompt}, "-")))
	return hex.EncodeToString(hash[:])
}
