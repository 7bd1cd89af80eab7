// Package reqctx carries request-scoped data through context.Context.
//
// HTTP middleware stores a RequestMeta and a request-bound *slog.Logger on
// every request; services read them back without depending on fiber:
//
//	log := reqctx.Logger(ctx)
//	log.Info("patient created", slog.String("patient_id", id))
//
// Context keys are unexported so only this package can set them.
package reqctx
