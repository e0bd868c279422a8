package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr          string
	EnableMetrics bool
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Category:    "Server",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("LAUNCHDASH_ADDR"),
			Destination: &s.Addr,
		},
		&cli.BoolFlag{
			Name:        "enable-metrics",
			Usage:       "Expose Prometheus metrics at /metrics",
			Category:    "Server",
			Value:       true,
			Sources:     cli.EnvVars("LAUNCHDASH_ENABLE_METRICS"),
			Destination: &s.EnableMetrics,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Bool("enable_metrics", s.EnableMetrics),
	)
}
