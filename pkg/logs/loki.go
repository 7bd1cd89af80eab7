package logs

import (
	"encoding/base64"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3/client"

	"github.com/Alijeyrad/sorriso_backend/config"
)

type lokiStream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

type lokiPush struct {
	Streams []lokiStream `json:"streams"`
}

// lokiWriter pushes each JSON log line to Loki's push API.
type lokiWriter struct {
	endpoint string
	auth     string
	labels   map[string]string
	cc       *client.Client
}

func newLokiHandler(cfg *config.Config, level slog.Level) slog.Handler {
	lw := &lokiWriter{
		endpoint: strings.TrimRight(cfg.Logging.Output.Loki.Endpoint, "/") + "/loki/api/v1/push",
		labels: map[string]string{
			"service": cfg.Observability.ServiceName,
			"env":     cfg.Server.Environment,
		},
		cc: client.New().SetTimeout(3 * time.Second),
	}
	if u := cfg.Logging.Output.Loki.Username; u != "" {
		creds := u + ":" + cfg.Logging.Output.Loki.Password
		lw.auth = "Basic " + base64.StdEncoding.EncodeToString([]byte(creds))
	}
	return slog.NewJSONHandler(lw, &slog.HandlerOptions{Level: level})
}

func (lw *lokiWriter) payload(p []byte, at time.Time) lokiPush {
	return lokiPush{Streams: []lokiStream{{
		Stream: lw.labels,
		Values: [][2]string{{strconv.FormatInt(at.UnixNano(), 10), strings.TrimRight(string(p), "\n")}},
	}}}
}

func (lw *lokiWriter) Write(p []byte) (int, error) {
	header := map[string]string{"Content-Type": "application/json"}
	if lw.auth != "" {
		header["Authorization"] = lw.auth
	}

	resp, err := lw.cc.Post(lw.endpoint, client.Config{
		Header: header,
		Body:   lw.payload(p, time.Now()),
	})
	if err != nil {
		return 0, err
	}
	resp.Close()
	return len(p), nil
}
