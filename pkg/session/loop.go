package session

import (
	"fmt"
	"runtime/debug"
	"sort"
	"strconv"
	"strings"

	"github.com/spearit/dashboard/internal/errors"
)

const hidPrefix = "h"

// EventLoop is the session's single goroutine. Every handler, timer callback,
// frame callback and render runs here.
func (s *Session) EventLoop() {
	defer s.cleanup()

	for {
		select {
		case <-s.done:
			return

		case msg := <-s.events:
			s.handleMessage(msg)
			s.flush()

		case fn := <-s.dispatchCh:
			s.executeDispatch(fn)
			s.flush()

		case <-s.wake:
			for _, fn := range s.takeOverflow() {
				s.executeDispatch(fn)
			}
			s.flush()
		}
	}
}

// cleanup runs on the loop goroutine after the session closed.
func (s *Session) cleanup() {
	if s.stopLimiter != nil {
		s.stopLimiter()
	}
	s.toasts.Close()
	if d, ok := s.root.(Disposer); ok {
		s.safeCall("dispose", d.Dispose)
	}
	s.frameMu.Lock()
	s.frames = nil
	s.frameMu.Unlock()
	close(s.stopped)
}

func (s *Session) handleMessage(msg *ClientMessage) {
	switch msg.T {
	case MsgFrame:
		s.runFrame()
	case MsgEvent:
		s.handleEvent(msg)
	}
}

// valueEvents report the element's current value rather than an action.
var valueEvents = map[string]bool{"input": true, "change": true, "blur": true}

// stale reports whether msg was produced against an older handler layout and
// must not run. Value events stay valid while their ID still listens for the
// same event; actions such as clicks are refused.
func (s *Session) stale(msg *ClientMessage) bool {
	if msg.Epoch == 0 || msg.Epoch == s.epoch {
		return false
	}
	return !valueEvents[msg.Type] || s.handlers.Lookup(msg.HID, msg.Type) == nil
}

// handleEvent runs the handler bound to msg.HID. Actions produced against an
// older handler layout are rejected so they cannot reach whatever element
// took the ID since.
func (s *Session) handleEvent(msg *ClientMessage) {
	s.eventCount.Add(1)
	finish := s.observer.EventStarted(s.ID, msg.HID, msg.Type)

	if s.stale(msg) {
		s.logger.Debug("stale event", "hid", msg.HID, "event", msg.Type,
			"epoch", msg.Epoch, "current", s.epoch)
		err := errors.New(errors.CodeHandlerNotFound).
			WithDetailf("%s %s (stale layout)", msg.HID, msg.Type)
		s.sendError(err)
		finish(err.Code)
		return
	}

	handler := s.handlers.Lookup(msg.HID, msg.Type)
	if handler == nil {
		s.logger.Warn("handler not found", "hid", msg.HID, "event", msg.Type)
		err := errors.New(errors.CodeHandlerNotFound).WithDetailf("%s %s", msg.HID, msg.Type)
		s.sendError(err)
		finish(err.Code)
		return
	}

	if err := s.invoke(handler, msg.Value); err != nil {
		s.sendError(err)
		finish(err.Code)
		return
	}
	finish("")
}

// invoke calls a handler, converting a panic into a D006 error.
func (s *Session) invoke(handler any, value string) (derr *errors.DashError) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("handler panic",
				"panic", r,
				"stack", string(debug.Stack()))
			derr = errors.New(errors.CodeHandlerPanic).WithDetail(fmt.Sprint(r))
		}
	}()

	switch h := handler.(type) {
	case func():
		h()
	case func(string):
		h(value)
	default:
		return errors.New(errors.CodeHandlerNotFound).
			WithDetailf("unsupported handler %T", handler)
	}
	return nil
}

// executeDispatch runs a dispatched function with panic recovery.
func (s *Session) executeDispatch(fn func()) {
	s.safeCall("dispatch", fn)
}

func (s *Session) safeCall(what string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(what+" callback panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

// runFrame runs the frame callbacks queued before this frame began. Callbacks
// queued while the batch runs wait for the next frame.
func (s *Session) runFrame() {
	s.stopFallback()
	s.rafPending = false
	s.rafByClient = false

	s.frameMu.Lock()
	batch := s.frames
	s.frames = nil
	s.frameMu.Unlock()

	for _, t := range batch {
		if t.cancelled.Load() {
			continue
		}
		s.safeCall("frame", t.fn)
	}
}

// flush re-renders after a loop task and sends the result when it differs
// from what the client last saw. It then asks for a frame if callbacks wait.
func (s *Session) flush() {
	if s.closed.Load() {
		return
	}
	if s.Connected() {
		html, err := s.render()
		if err != nil {
			s.logger.Error("render failed", "error", err)
			s.sendError(errors.New(errors.CodeRenderFailed).Wrap(err))
		} else if html != s.sentHTML || s.title != s.sentTitle || s.epoch != s.sentEpoch {
			msg := ServerMessage{T: MsgRender, HTML: html, Title: s.title, Epoch: s.epoch}
			if s.send(msg) == nil {
				s.sentHTML, s.sentTitle, s.sentEpoch = html, s.title, s.epoch
			}
		}
	}
	s.requestFrame()
}

// render renders the root, replaces the handler table and advances the
// epoch when the handler layout changed.
func (s *Session) render() (string, error) {
	if s.root == nil {
		return "", errors.New(errors.CodeRenderFailed).WithDetail("no root mounted")
	}
	html, handlers, err := s.renderer.Render(s.root.Render())
	if err != nil {
		return "", err
	}
	s.handlers = handlers
	if layout := layoutSignature(handlers); layout != s.layout || s.epoch == 0 {
		s.layout = layout
		s.epoch++
	}
	return html, nil
}

// layoutSignature describes which hydration IDs exist and which events each
// one listens to. Changing a value does not change it; adding, removing or
// reordering interactive elements does.
func layoutSignature(h map[string]map[string]any) string {
	var b strings.Builder
	for i := 1; i <= len(h); i++ {
		hid := hidPrefix + strconv.Itoa(i)
		events := make([]string, 0, len(h[hid]))
		for ev := range h[hid] {
			events = append(events, ev)
		}
		sort.Strings(events)
		b.WriteString(hid)
		b.WriteByte(':')
		b.WriteString(strings.Join(events, ","))
		b.WriteByte(';')
	}
	return b.String()
}

// requestFrame asks for the next frame when callbacks are queued. With a
// client attached the browser drives frames; otherwise a timer does.
func (s *Session) requestFrame() {
	if s.rafPending || !s.hasFrames() {
		return
	}
	s.rafPending = true
	if s.Connected() && s.send(ServerMessage{T: MsgRAF}) == nil {
		s.rafByClient = true
		return
	}
	s.rafByClient = false
	s.fallback = s.After(s.cfg.FrameFallback, s.runFrame)
}

// stopFallback cancels a pending fallback frame timer.
func (s *Session) stopFallback() {
	if s.fallback != nil {
		s.fallback()
		s.fallback = nil
	}
}

func (s *Session) hasFrames() bool {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	for _, t := range s.frames {
		if !t.cancelled.Load() {
			return true
		}
	}
	return false
}

// onDetach runs on the loop when the client connection goes away. A frame
// the client will never report falls back to the timer.
func (s *Session) onDetach() {
	if s.rafPending && s.rafByClient {
		s.rafPending = false
		s.rafByClient = false
	}
}

// onAttach runs on the loop when a client connects. The next flush sends a
// full render, and a frame pending on the fallback timer is handed to the
// client instead.
func (s *Session) onAttach() {
	if s.fallback != nil {
		s.stopFallback()
		s.rafPending = false
	}
	s.sentHTML = ""
	s.sentTitle = ""
	s.sentEpoch = 0
}
