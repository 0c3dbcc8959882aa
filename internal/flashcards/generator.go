package flashcards

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/studyquiz/internal/chunk"
	"github.com/abhisek/studyquiz/internal/llm"
	"github.com/abhisek/studyquiz/internal/logger"
)

const purpose = "flashcards"

// Generator asks a Provider for flashcards chunk by chunk.
type Generator struct {
	provider llm.Provider
	cfg      Config
	log      *logger.Logger
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config, log *logger.Logger) *Generator {
	return &Generator{
		provider: provider,
		cfg:      cfg.withDefaults(),
		log:      logger.OrNop(log).With("component", "flashcards"),
	}
}

// Generate splits text by headers and requests cards for every chunk, at
// most Config.Concurrency at a time. topic labels header-less text. A chunk
// whose request fails or whose reply cannot be parsed is logged and
// skipped. Cards keep document order and repeated fronts are dropped.
//
// The only error returned is the context's, together with the cards
// collected before cancellation.
func (g *Generator) Generate(ctx context.Context, text, topic string) (List, error) {
	fallback := topic
	if fallback == "" {
		fallback = g.cfg.FallbackTopic
	}
	chunks := chunk.ByHeaders(text, fallback, g.cfg.WindowSize)
	g.log.Debug("segmented document", "chunks", len(chunks))

	results := make([][]Flashcard, len(chunks))
	var eg errgroup.Group
	eg.SetLimit(g.cfg.Concurrency)
	for i, c := range chunks {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			cards, err := g.generateChunk(ctx, c)
			if err != nil {
				g.log.Warn("skipping chunk", "topic", c.Topic, "index", i, "error", err)
				return nil
			}
			results[i] = cards
			return nil
		})
	}
	_ = eg.Wait()

	list := List{Items: []Flashcard{}}
	seen := make(map[string]bool)
	for _, cards := range results {
		for _, card := range cards {
			key := strings.ToLower(strings.TrimSpace(card.Front))
			if seen[key] {
				continue
			}
			seen[key] = true
			list.Items = append(list.Items, card)
		}
	}
	g.log.Info("generated flashcards", "chunks", len(chunks), "cards", len(list.Items))
	return list, ctx.Err()
}

func (g *Generator) generateChunk(ctx context.Context, c chunk.Chunk) ([]Flashcard, error) {
	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, purpose), g.cfg.Timeout)
	defer cancel()

	req := llm.UserRequest(systemPrompt, buildUserMessage(c.Topic, c.Content))
	req.Schema = CardsSchema
	req.MaxTokens = g.cfg.MaxTokens
	req.Temperature = g.cfg.Temperature

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate cards for %q: %w", c.Topic, err)
	}
	raw, err := parseCards(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("parse cards for %q: %w", c.Topic, err)
	}

	cards := raw[:0]
	for _, card := range raw {
		card.Front, card.Back = strings.TrimSpace(card.Front), strings.TrimSpace(card.Back)
		if verr := g.validate(card); verr != nil {
			g.log.Debug("dropping card", "topic", c.Topic, "front", card.Front, "error", verr)
			continue
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (g *Generator) validate(c Flashcard) *ValidationError {
	for _, v := range g.cfg.Validators {
		if err := v.Validate(c); err != nil {
			return err
		}
	}
	return nil
}

// parseCards accepts the schema shape {"items": [...]} and, from models
// that ignore it, a bare JSON array of cards.
func parseCards(raw json.RawMessage) ([]Flashcard, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var cards []Flashcard
		if err := json.Unmarshal(trimmed, &cards); err != nil {
			return nil, err
		}
		return cards, nil
	}
	var list List
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}
