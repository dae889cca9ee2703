// Package logger builds log/slog loggers for the service.
//
// New applies functional options over production defaults (JSON, INFO,
// stdout). WithEnvironment switches to text output at DEBUG level outside
// production. Context extractors registered with WithContextExtractors are
// evaluated on every record, so request-scoped values such as the request
// ID or the selected stylesheet appear without being passed explicitly:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "docstyle"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        stylesheet.LoggerExtractor(),
//	    ),
//	)
//	log.InfoContext(r.Context(), "page rendered", logger.Client(info.ShortIdentifier()))
//
// The attribute helpers in attr.go keep key names consistent across
// packages.
package logger
