package bridge

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"telebridge/internal/domain"
	"telebridge/internal/logging"
	"telebridge/internal/stats"
)

const (
	sampleBytes     = 500
	tokenPreviewLen = 20
)

func (d *Dispatcher) relayMetrics(w http.ResponseWriter, r *http.Request, log *zap.Logger) {
	payload, err := readBody(r)
	if err != nil {
		log.Warn("metrics body unreadable", zap.Error(err))
		d.stats.RelayFailures.WithLabelValues(stats.ReasonRead).Inc()
		writeEmpty(w, http.StatusInternalServerError)
		return
	}
	d.stats.RelayBytes.WithLabelValues(stats.StageReceived).Add(float64(len(payload)))
	log.Info("received metrics", zap.Int("bytes", len(payload)))

	if isGzip(r) {
		compressed := len(payload)
		payload, err = gunzip(payload, d.maxBytes)
		if err != nil {
			log.Warn("failed to decompress metrics", zap.Error(err))
			d.stats.RelayFailures.WithLabelValues(stats.ReasonDecode).Inc()
			writeEmpty(w, http.StatusInternalServerError)
			return
		}
		log.Debug("decompressed metrics", zap.Int("from", compressed), zap.Int("to", len(payload)))
	}

	d.inspectBearer(r, log)
	log.Debug("metrics sample", zap.String("sample", logging.Sample(payload, sampleBytes)))

	// The push outlives a node that hangs up; only the forwarder timeout
	// bounds it.
	ctx := context.WithoutCancel(r.Context())
	start := time.Now()
	res, err := d.fwd.Push(ctx, payload)
	if err != nil {
		d.stats.ObserveForward(time.Since(start), 0)
		log.Error("error forwarding to push gateway", zap.Error(err))
		writeEmpty(w, http.StatusInternalServerError)
		return
	}
	d.stats.ObserveForward(time.Since(start), res.StatusCode)
	d.stats.RelayBytes.WithLabelValues(stats.StageForwarded).Add(float64(len(payload)))
	logPush(log, res)
	writeOK(w)
}

func logPush(log *zap.Logger, res domain.PushResult) {
	if res.OK() {
		log.Info("forwarded metrics to push gateway", zap.Int("status", res.StatusCode))
		return
	}
	log.Warn("push gateway error",
		zap.Int("status", res.StatusCode),
		zap.String("reply", res.Body))
}

// inspectBearer only logs. The generated identity reports token details; the
// static one just notes presence at debug level.
func (d *Dispatcher) inspectBearer(r *http.Request, log *zap.Logger) {
	tok, ok := bearerToken(r)
	if d.id.Variant() != domain.VariantGenerated {
		log.Debug("bearer token", zap.Bool("present", ok))
		return
	}
	if !ok {
		log.Info("no authorization header found, proceeding anyway")
		return
	}
	if len(tok) > tokenPreviewLen {
		tok = tok[:tokenPreviewLen]
	}
	log.Info("received bearer token", zap.String("token_prefix", tok))
}
