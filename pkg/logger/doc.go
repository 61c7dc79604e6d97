// Package logger provides a context-aware wrapper around Go's slog package:
// a single New factory configured by functional options, helper attribute
// constructors and transparent injection of values stored in context.Context.
//
// New builds either a text or JSON handler and wraps it with ContextHandler,
// which runs any registered ContextExtractor callbacks before delegating.
// Helper constructors such as Error, Username and SessionID keep attribute
// naming consistent across the codebase.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithProduction("credkit"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "session created",
//	    logger.Username("alice"),
//	    logger.SessionID(id),
//	)
package logger
