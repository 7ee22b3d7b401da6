// Package session runs one dashboard tab on the server.
//
// A Session owns a component tree and a single event loop goroutine. Client
// events, timer callbacks and frame callbacks all run on that loop, so
// component state needs no locking. After every task the tree is rendered
// again and, when the markup or title changed, pushed to the browser.
//
// # Wire Protocol
//
// The thin client and the session exchange JSON text frames:
//
//	client -> server  {"t":"event","hid":"h3","type":"input","value":"a@b.c","epoch":4}
//	client -> server  {"t":"frame"}
//	server -> client  {"t":"render","html":"...","title":"Login - Spearit Dashboard","epoch":4}
//	server -> client  {"t":"raf"}
//	server -> client  {"t":"error","code":"D002","message":"Handler not found: h3 input"}
//
// Hydration IDs are handed out in document order to interactive elements
// only. The epoch changes whenever the set of IDs or their events changes.
// A click or other action carrying an older epoch is rejected with D002
// instead of reaching an element that took over its ID. Value events (input,
// change, blur) still apply while their ID listens for the same event, so
// typing across an unrelated re-render is not lost.
//
// # Frames
//
// NextFrame callbacks run on the next browser animation frame. The session
// sends "raf", the client answers "frame" from requestAnimationFrame, and the
// batch queued before that answer runs. With no client attached a 16ms timer
// stands in for the browser.
//
// # Manager
//
// The Manager creates sessions with UUID identifiers, enforces global and
// per-address limits, and sweeps sessions whose client has been gone longer
// than the idle timeout:
//
//	mgr := session.NewManager(session.DefaultManagerConfig(), logger)
//	go mgr.Run(ctx)
//	s, err := mgr.Create(ip, func(s *session.Session) vdom.Component {
//	    return pages.NewLogin(pages.EnvFor(s))
//	})
package session
