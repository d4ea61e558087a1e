// Package dispatch orchestrates gateway operations: it validates incoming
// requests, picks the upstream provider, normalizes models, voices, and
// formats to each provider's vocabulary, and maps every failure onto the
// uniform HTTP error taxonomy.
package dispatch

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/voiceagent/gateway/internal/config"
	"github.com/voiceagent/gateway/internal/observability"
	"github.com/voiceagent/gateway/internal/providers"
)

// ProviderSet is the slice of the provider registry the dispatcher needs.
type ProviderSet interface {
	Transcriber(providers.Tag) providers.SpeechToText
	Synthesizer(providers.Tag) providers.TextToSpeech
	Chat() providers.ChatCompletions
	VoiceCatalog() providers.VoiceLister
}

// Dispatcher routes each operation to its provider. It is stateless beyond
// configuration and safe for concurrent use.
type Dispatcher struct {
	cfg    *config.Config
	set    ProviderSet
	obs    *observability.Provider
	logger *slog.Logger
}

func New(cfg *config.Config, set ProviderSet, obs *observability.Provider) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		set:    set,
		obs:    obs,
		logger: slog.Default().With("component", "dispatch"),
	}
}

// observe records the latency and mapped status of one upstream call. The
// error, if any, is already mapped into the API taxonomy.
func (d *Dispatcher) observe(provider, operation string, start time.Time, err error) {
	if d.obs == nil {
		return
	}
	status := http.StatusOK
	if err != nil {
		status = http.StatusInternalServerError
		if mapped, _, _, ok := AsAPIError(err); ok {
			status = mapped
		}
	}
	d.obs.RecordProviderCall(provider, operation, status, time.Since(start))
}
