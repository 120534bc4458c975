package service

import (
	"context"
	"testing"

	"style-weaver-be/internal/constant"
	"style-weaver-be/internal/dto"
	"style-weaver-be/internal/pkg/logger"
	"style-weaver-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func first(int) int { return 0 }

func TestChatService_Reply(t *testing.T) {
	svc := NewChatService(first, logger.NewNopLogger())

	tests := []struct {
		name      string
		message   string
		wantStyle string
		want      string
	}{
		{
			name:      "90s keyword",
			message:   "I want a 90s look",
			wantStyle: "90s Revival",
			want:      constant.StyleKeywords[0].Responses[0],
		},
		{
			name:      "keyword priority beats later keywords",
			message:   "something clean but grunge",
			wantStyle: "90s Revival",
			want:      constant.StyleKeywords[1].Responses[0],
		},
		{
			name:      "case insensitive",
			message:   "TECH please",
			wantStyle: "Hacker Mode",
			want:      constant.StyleKeywords[5].Responses[0],
		},
		{
			name:    "mood keyword",
			message: "feeling edgy today",
			want:    "Edgy style calls for some 90s Revival grunge vibes! 🔥",
		},
		{
			name:    "greeting",
			message: "Hello!",
			want:    constant.GreetingResponse,
		},
		{
			name:    "style question",
			message: "what style suits me?",
			want:    constant.StyleQuestionResponse,
		},
		{
			name:    "other question",
			message: "where are you?",
			want:    constant.QuestionResponse,
		},
		{
			name:    "default",
			message: "purple",
			want:    constant.DefaultChatResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Reply(context.Background(), &dto.ChatMessageRequest{Message: tt.message})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Response)
			if tt.wantStyle == "" {
				assert.Nil(t, res.SuggestedStyle)
			} else {
				require.NotNil(t, res.SuggestedStyle)
				assert.Equal(t, tt.wantStyle, *res.SuggestedStyle)
			}
		})
	}
}

func TestChatService_PickerSelectsReply(t *testing.T) {
	svc := NewChatService(func(n int) int { return n - 1 }, logger.NewNopLogger())

	res, err := svc.Reply(context.Background(), &dto.ChatMessageRequest{Message: "minimalist"})
	require.NoError(t, err)
	assert.Equal(t, constant.StyleKeywords[2].Responses[2], res.Response)
}

func TestChatService_RandomPickerStaysInRange(t *testing.T) {
	svc := NewChatService(nil, logger.NewNopLogger())

	for i := 0; i < 20; i++ {
		res, err := svc.Reply(context.Background(), &dto.ChatMessageRequest{Message: "hacker"})
		require.NoError(t, err)
		assert.Contains(t, constant.StyleKeywords[6].Responses, res.Response)
	}
}

func TestChatService_BlankMessage(t *testing.T) {
	svc := NewChatService(first, logger.NewNopLogger())

	_, err := svc.Reply(context.Background(), &dto.ChatMessageRequest{Message: "   "})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}
