// Package server serves the dashboard over HTTP.
//
// A page request creates a session, renders its root component and returns
// a complete document that loads the thin client. The client then connects
// to /_dash/ws with the session id and the session pushes every later
// render over that socket.
//
//	mgr := session.NewManager(session.DefaultManagerConfig(), logger)
//	srv := server.New(server.DefaultConfig(), mgr, server.WithLogger(logger))
//	err := srv.Run(ctx)
//
// Routes:
//
//	GET /_dash/client.js   thin client, revalidated by ETag
//	GET /_dash/ws          WebSocket for ?session=<id>; 404 if unknown
//	GET /healthz           liveness and session count
//	GET /metrics           Prometheus, when WithMetrics is given
//	GET /*                 dashboard pages; unknown paths render NotFound (404)
package server
