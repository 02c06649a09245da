// Package worker runs the assistant as a Redis Streams consumer.
//
// Each stream message carries a JSON payload {"id": "...", "query": "..."} in
// its data field. Queries are dispatched one at a time and the result is
// published to the result stream. Messages are always acknowledged; ones that
// cannot be parsed are reported on the "<result stream>.errors" stream.
//
//	w := worker.NewWorker(cfg, redisClient, dispatcher, logger)
//	if err := w.Start(); err != nil {
//	    return err
//	}
//	defer w.Stop()
//
// Health checks, the counter snapshot and Prometheus metrics are served by a
// separate HTTP server:
//
//	healthServer := worker.NewHealthServer(cfg.HealthPort, redisClient, dispatcher, logger)
//	healthServer.Start()
//	defer healthServer.Stop()
package worker
