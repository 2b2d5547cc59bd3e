// internal/app/highlight_manager.go
package app

import (
	"context"
	"sync"
	"time"

	"github.com/mvetter/codearea/internal/highlight"
	"github.com/mvetter/codearea/internal/logger"
)

const highlightDebounce = 65 * time.Millisecond

// HighlightManager debounces buffer changes and re-runs the highlighter on a
// background goroutine. The parser is not safe for concurrent use, so at most
// one pass runs at a time; changes arriving mid-pass schedule a follow-up.
type HighlightManager struct {
	hl      *highlight.Highlighter
	textFn  func() string
	applyFn func(highlight.Result)

	mu      sync.Mutex
	lang    *highlight.Language
	timer   *time.Timer
	cancel  context.CancelFunc
	running bool
	rerun   bool
}

// NewHighlightManager creates a manager. textFn snapshots the current buffer
// and applyFn installs a finished result; applyFn is called from the
// background goroutine and must be safe to invoke there.
func NewHighlightManager(hl *highlight.Highlighter, textFn func() string, applyFn func(highlight.Result)) *HighlightManager {
	return &HighlightManager{hl: hl, textFn: textFn, applyFn: applyFn}
}

// SetLanguage selects the grammar; nil disables highlighting and clears any
// existing overlay.
func (hm *HighlightManager) SetLanguage(lang *highlight.Language) {
	hm.mu.Lock()
	hm.lang = lang
	hm.mu.Unlock()
	if lang == nil {
		hm.applyFn(nil)
	}
}

// RunNow performs one synchronous pass, used for the initial parse before the
// first frame so the document never flashes unstyled.
func (hm *HighlightManager) RunNow(ctx context.Context) {
	hm.mu.Lock()
	lang := hm.lang
	hm.mu.Unlock()
	if lang == nil {
		return
	}
	result, err := hm.hl.Run(ctx, hm.textFn(), lang)
	if err != nil {
		logger.Warnf("highlight: initial pass failed: %v", err)
		return
	}
	hm.applyFn(result)
}

// Notify records that the buffer changed and (re)arms the debounce timer.
func (hm *HighlightManager) Notify() {
	hm.mu.Lock()
	defer hm.mu.Unlock()
	if hm.lang == nil {
		return
	}
	if hm.timer != nil {
		hm.timer.Reset(highlightDebounce)
		return
	}
	hm.timer = time.AfterFunc(highlightDebounce, hm.runUpdate)
}

func (hm *HighlightManager) runUpdate() {
	hm.mu.Lock()
	hm.timer = nil
	if hm.running {
		// A pass is in flight over stale text; run again when it finishes.
		hm.rerun = true
		hm.mu.Unlock()
		return
	}
	lang := hm.lang
	if lang == nil {
		hm.mu.Unlock()
		return
	}
	hm.running = true
	var ctx context.Context
	ctx, hm.cancel = context.WithCancel(context.Background())
	hm.mu.Unlock()

	text := hm.textFn()

	go func() {
		result, err := hm.hl.Run(ctx, text, lang)

		hm.mu.Lock()
		hm.running = false
		hm.cancel = nil
		rerun := hm.rerun
		hm.rerun = false
		hm.mu.Unlock()

		switch {
		case ctx.Err() != nil:
			logger.Debugf("highlight: pass cancelled")
		case err != nil:
			logger.Warnf("highlight: pass failed: %v", err)
		default:
			hm.applyFn(result)
		}

		if rerun {
			hm.Notify()
		}
	}()
}

// Shutdown stops the timer and cancels any in-flight pass.
func (hm *HighlightManager) Shutdown() {
	hm.mu.Lock()
	defer hm.mu.Unlock()
	if hm.timer != nil {
		hm.timer.Stop()
		hm.timer = nil
	}
	if hm.cancel != nil {
		hm.cancel()
		hm.cancel = nil
	}
}
