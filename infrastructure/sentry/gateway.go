/*
 * © 2026 beyondverage0908
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sentry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	er "github.com/beyondverage0908/nanjin-common/domain/observability/error_reporting"
	"github.com/beyondverage0908/nanjin-common/domain/observability/performance"
	"github.com/beyondverage0908/nanjin-common/internal/concurrency"
)

var (
	ErrLegacyAgent = errors.New("user agent is below the supported version floor")
	ErrNotReady    = errors.New("error reporting client is not ready")
)

const rebindFlushTimeout = time.Second

// BeforeSendFunc observes every outbound event. Returning nil drops the event.
type BeforeSendFunc func(event *sentry.Event) *sentry.Event

var _ er.ErrorReporter = (*Gateway)(nil)

// Gateway owns one sentry hub and gates every report on the client being loaded and initialized.
// All public methods are safe for concurrent use and never panic.
type Gateway struct {
	hub          *sentry.Hub
	loader       Loader
	presenter    Presenter
	instrumentor performance.Instrumentor
	logger       *zerolog.Logger
	transport    sentry.Transport
	userAgent    string
	legacyFloor  string
	consent      func() bool
	deviceId     func() string
	pendingLimit int
	duplicates   *duplicateFilter

	sdkPresent  concurrency.AtomicBool
	loading     concurrency.AtomicBool
	ready       concurrency.AtomicBool
	readySignal concurrency.Signal
	failSignal  concurrency.Signal

	mu           sync.Mutex
	beforeSend   BeforeSendFunc
	cfg          er.ReportingConfig
	loadErr      error
	pending      []er.ScopeEnrichment
	userEnriched bool
}

func NewGateway(opts ...Option) *Gateway {
	nop := zerolog.Nop()
	g := &Gateway{
		hub:          sentry.NewHub(nil, sentry.NewScope()),
		loader:       PresentLoader{},
		instrumentor: performance.NewNoopInstrumentor(),
		logger:       &nop,
		legacyFloor:  defaultLegacyFloor,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.presenter == nil {
		g.presenter = NewLogPresenter(g.logger)
	}
	return g
}

// Hub is exposed for hosts that need sentry features the gateway does not wrap.
func (g *Gateway) Hub() *sentry.Hub { return g.hub }

func (g *Gateway) EnsureClient(ctx context.Context, cfg er.ReportingConfig, onReady er.ReadyFunc) (result er.Result) {
	defer g.recoverInto("EnsureClient", &result)
	if g.isLegacy() {
		g.logger.Debug().Str("method", "EnsureClient").Str("userAgent", g.userAgent).Msg("legacy user agent, skipping sdk load")
		return er.Fail(er.StatusUnsupported, ErrLegacyAgent)
	}
	if g.sdkPresent.Get() {
		return g.initialize(cfg, onReady)
	}
	if !g.loading.CompareAndSet(false, true) {
		if err := g.LoadErr(); err != nil {
			return er.Fail(er.StatusLoadFailed, err)
		}
		return er.Result{Status: er.StatusPending}
	}
	go g.load(ctx, cfg, onReady)
	return er.Result{Status: er.StatusPending}
}

func (g *Gateway) load(ctx context.Context, cfg er.ReportingConfig, onReady er.ReadyFunc) {
	defer func() {
		if r := recover(); r != nil {
			g.setLoadErr(fmt.Errorf("sdk load panicked: %v", r))
		}
	}()
	if ctx == nil {
		ctx = context.Background()
	}
	span := g.instrumentor.NewTransaction(ctx, "sdk", "sdk.load")
	err := g.loader.Load(span.Context())
	g.instrumentor.Finish(span)
	if err != nil {
		g.setLoadErr(err)
		return
	}
	g.sdkPresent.Set(true)
	g.logger.Debug().Str("method", "load").Str("traceId", span.GetTraceId()).Msg("sdk loaded")
	g.initialize(cfg, onReady)
}

func (g *Gateway) setLoadErr(err error) {
	g.logger.Error().Err(err).Str("method", "load").Msg("couldn't load error reporting sdk")
	g.mu.Lock()
	g.loadErr = err
	g.mu.Unlock()
	g.failSignal.Fire()
}

// LoadErr returns the error of a failed sdk load, if any.
func (g *Gateway) LoadErr() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loadErr
}

// Initialize binds a fresh client built from cfg. Calling it again replaces the client, last call wins.
func (g *Gateway) Initialize(cfg er.ReportingConfig, onReady er.ReadyFunc) (result er.Result) {
	defer g.recoverInto("Initialize", &result)
	if g.isLegacy() {
		return er.Fail(er.StatusUnsupported, ErrLegacyAgent)
	}
	if !g.sdkPresent.Get() {
		return g.EnsureClient(context.Background(), cfg, onReady)
	}
	return g.initialize(cfg, onReady)
}

func (g *Gateway) initialize(cfg er.ReportingConfig, onReady er.ReadyFunc) er.Result {
	client, err := sentry.NewClient(g.clientOptions(cfg))
	if err != nil {
		g.logger.Error().Err(err).Str("method", "Initialize").Msg("couldn't create error reporting client")
		return er.Fail(er.StatusInvalidInput, err)
	}
	if previous := g.hub.Client(); previous != nil {
		previous.Flush(rebindFlushTimeout)
	}
	g.hub.BindClient(client)

	g.publishReady(cfg)

	g.logger.Info().Str("method", "Initialize").Str("environment", string(cfg.Environment.OrDefault())).Msg("Error reporting initialized")
	if onReady != nil {
		g.callReady(onReady)
	}
	g.readySignal.Fire()
	return er.Ok("")
}

// publishReady replays pending enrichments before ready is set, so any
// EnrichScope that observes ready was issued after them.
func (g *Gateway) publishReady(cfg er.ReportingConfig) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cfg = cfg
	pending := g.pending
	g.pending = nil
	for _, enrichment := range pending {
		g.applyEnrichmentLocked(enrichment.Tags, enrichment.User)
	}
	if cfg.AttachDeviceID && g.deviceId != nil && !g.userEnriched {
		if id := g.deviceId(); id != "" {
			g.hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetUser(sentry.User{ID: id})
			})
		}
	}
	g.ready.Set(true)
}

func (g *Gateway) callReady(onReady er.ReadyFunc) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error().Str("method", "Initialize").Msgf("onReady callback panicked: %v", r)
		}
	}()
	onReady()
}

// Failed is closed once the sdk load has failed; LoadErr holds the cause.
func (g *Gateway) Failed() <-chan struct{} { return g.failSignal.Done() }

// Ready is closed once the first initialization has bound a client and called its onReady.
func (g *Gateway) Ready() <-chan struct{} { return g.readySignal.Done() }

func (g *Gateway) IsReady() bool { return g.ready.Get() }

// SetBeforeSend fills the single callback slot; the last registrant wins, nil clears it.
func (g *Gateway) SetBeforeSend(fn BeforeSendFunc) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.beforeSend = fn
}

func (g *Gateway) Flush(timeout time.Duration) bool {
	if !g.ready.Get() {
		return false
	}
	return g.hub.Flush(timeout)
}

func (g *Gateway) isLegacy() bool {
	return IsLegacyAgent(g.userAgent, g.legacyFloor)
}

func (g *Gateway) recoverInto(method string, result *er.Result) {
	if r := recover(); r != nil {
		err := fmt.Errorf("%v", r)
		g.logger.Error().Err(err).Str("method", method).Msg("recovered from panic in error reporting")
		*result = er.Fail(er.StatusInvalidInput, err)
	}
}
