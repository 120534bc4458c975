package service

import (
	"context"
	"math/rand/v2"
	"strings"

	"style-weaver-be/internal/constant"
	"style-weaver-be/internal/dto"
	"style-weaver-be/internal/pkg/logger"
	"style-weaver-be/internal/pkg/serverutils"
)

// Picker returns an index in [0, n).
type Picker func(n int) int

type IChatService interface {
	Reply(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error)
}

type chatService struct {
	pick   Picker
	logger logger.ILogger
}

// NewChatService builds the keyword style assistant. A nil picker chooses replies at random.
func NewChatService(pick Picker, logger logger.ILogger) IChatService {
	if pick == nil {
		pick = rand.IntN
	}
	return &chatService{pick: pick, logger: logger}
}

func (s *chatService) Reply(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, serverutils.BadRequest("Message must not be empty", nil)
	}

	lower := strings.ToLower(message)
	res := &dto.ChatMessageResponse{}

	for _, kw := range constant.StyleKeywords {
		if strings.Contains(lower, kw.Keyword) {
			trend := kw.Trend
			res.SuggestedStyle = &trend
			res.Response = kw.Responses[s.pick(len(kw.Responses))]
			break
		}
	}

	if res.Response == "" {
		for _, mood := range constant.MoodKeywords {
			if strings.Contains(lower, mood.Keyword) {
				res.Response = mood.Response
				break
			}
		}
	}

	if res.Response == "" && containsAny(lower, constant.Greetings) {
		res.Response = constant.GreetingResponse
	}

	if res.Response == "" && containsAny(lower, constant.QuestionWords) {
		if strings.Contains(lower, "style") || strings.Contains(lower, "fashion") {
			res.Response = constant.StyleQuestionResponse
		} else {
			res.Response = constant.QuestionResponse
		}
	}

	if res.Response == "" {
		res.Response = constant.DefaultChatResponse
	}

	s.logger.Debug("ChatService", "Chat reply", map[string]interface{}{
		"suggested_style": res.SuggestedStyle != nil,
	})
	return res, nil
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
