package llm

import (
	"context"
	"time"

	"github.com/abhisek/studyquiz/internal/logger"
)

// LoggingProvider logs one structured record per request: model, purpose,
// token usage, latency and the estimated cost when the model is priced.
type LoggingProvider struct {
	inner Provider
	log   *logger.Logger
}

// WithLogging wraps p with request logging.
func WithLogging(p Provider, log *logger.Logger) Provider {
	return &LoggingProvider{inner: p, log: logger.OrNop(log)}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	kv := []any{
		"model", l.inner.ModelID(),
		"purpose", PurposeFrom(ctx),
		"latency_ms", time.Since(start).Milliseconds(),
		"messages", len(req.Messages),
	}
	if req.Schema != nil {
		kv = append(kv, "schema", req.Schema.Name)
	}
	if resp != nil {
		kv = append(kv,
			"served_by", resp.Model,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
			"stop_reason", resp.StopReason,
		)
		if cost := LookupCost(resp.Model); cost != nil {
			kv = append(kv, "cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
	}

	if err != nil {
		l.log.Warn("llm request failed", append(kv, "error", err)...)
	} else {
		l.log.Debug("llm request", kv...)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
