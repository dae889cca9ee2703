// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run binds the listener, invokes start hooks with the bound address, then
// serves until the context is cancelled, SIGINT/SIGTERM arrives, or
// Shutdown is called. Shutdown is bounded by the shutdown timeout and is
// safe to call more than once.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    // errors.Is(err, httpserver.ErrStart)
//	}
//
// LivenessHandler and ReadinessHandler are meant for orchestrator probes.
package httpserver
