package textgen

import (
	"bytes"
	"context"
	"crooly-service/internal/app/config"
	"crooly-service/internal/app/contracts"
	"crooly-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	chatCompletionsPath     = "/chat/completions"
	chatMessageRoleUser     = "user"
	generatedContentPath    = "choices.0.message.content"
	maxErrorBodyLengthBytes = 4096
)

var ErrNotConfigured = errors.New("text generation api key is not configured")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type openAIService struct {
	APIKey      string
	Endpoint    string
	Model       string
	Temperature float64
	MaxTokens   int
	Client      *http.Client
	Log         *zap.Logger
}

// NewOpenAIService talks to any OpenAI compatible chat completion endpoint.
func NewOpenAIService(openAIConfig config.AppOpenAI, logger *zap.Logger) contracts.TextGenerationService {
	return &openAIService{
		APIKey:      strings.TrimSpace(openAIConfig.APIKey),
		Endpoint:    strings.TrimRight(openAIConfig.BaseURL, "/") + chatCompletionsPath,
		Model:       openAIConfig.Model,
		Temperature: openAIConfig.Temperature,
		MaxTokens:   openAIConfig.MaxTokens,
		Client: &http.Client{
			Timeout: time.Duration(openAIConfig.HTTPTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

func (s *openAIService) IsConfigured() bool {
	return s.APIKey != ""
}

// GenerateText returns the trimmed content of the first choice, "" when the
// response carries none.
func (s *openAIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("openAIService.GenerateText called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingModelKey, s.Model),
	)

	if !s.IsConfigured() {
		return "", ErrNotConfigured
	}

	requestJSON, err := json.Marshal(chatCompletionRequest{
		Model: s.Model,
		Messages: []chatMessage{
			{Role: chatMessageRoleUser, Content: prompt},
		},
		Temperature: s.Temperature,
		MaxTokens:   s.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.Endpoint, bytes.NewReader(requestJSON))
	if err != nil {
		return "", fmt.Errorf("create chat completion request: %w", err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		s.Log.Error("openAIService.GenerateText error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", fmt.Errorf("send chat completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLengthBytes))
		s.Log.Error("openAIService.GenerateText received non success status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("response_body", string(errorBody)),
		)
		return "", fmt.Errorf("chat completion returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat completion response: %w", err)
	}

	text := strings.TrimSpace(gjson.GetBytes(body, generatedContentPath).String())

	s.Log.Info("openAIService.GenerateText succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("text_length", len(text)),
	)
	return text, nil
}
