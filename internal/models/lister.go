package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListTranslationModels writes the chat models usable for translation to w
func (l *Lister) ListTranslationModels(ctx context.Context, w io.Writer) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .learner.yaml")
	}

	list, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(list.Models))
	for _, model := range list.Models {
		ids = append(ids, model.ID)
	}

	printModels(w, ChatModels(ids))
	return nil
}

// ChatModels filters model IDs down to sorted chat models
func ChatModels(ids []string) []string {
	var chat []string
	for _, id := range ids {
		if strings.Contains(id, "tts") || strings.Contains(id, "audio") ||
			strings.Contains(id, "realtime") || strings.Contains(id, "transcribe") {
			continue
		}
		if strings.Contains(id, "gpt") || strings.Contains(id, "chat") {
			chat = append(chat, id)
		}
	}
	sort.Strings(chat)
	return chat
}

func printModels(w io.Writer, chat []string) {
	fmt.Fprintln(w, "Chat models usable for translation:")
	if len(chat) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return
	}
	for _, model := range chat {
		fmt.Fprintf(w, "  %s\n", model)
	}
}
