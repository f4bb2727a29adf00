package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries the tunables the pipeline components need. It is built once
// in the composition root and passed explicitly to each use case so there is
// no ambient/global state.
//
// Supported env vars (local-friendly defaults):
//   - DEFAULT_TENANT            (default: "default")
//   - COMMAND_ACK_TIMEOUT       (default: 5m)  - PENDENTE/ENVIADO commands must ack within this budget
//   - COMMAND_FALLBACK_TTL      (default: 10m) - used when a command has no expires_at and no ack budget applies
//   - CYCLE_PREUSE_TTL          (default: 15m) - AGUARDANDO_LIBERACAO/LIBERADO cycles expire after this
//   - CYCLE_INUSE_BACKSTOP      (default: 24h) - EM_USO cycles past this are reported stale, never expired
//   - CYCLE_ETA_DURATION        (default: 50m) - estimated machine run time, sets eta_free_at on BUSY_ON
//   - DEVICE_HMAC_MAX_SKEW      (default: 5m)  - accepted clock drift on signed device requests
//   - POLL_MAX_COMMANDS         (default: 10)  - hard cap on commands returned per poll
type Config struct {
	DefaultTenant string

	CommandAckTimeout  time.Duration
	CommandFallbackTTL time.Duration
	CyclePreUseTTL     time.Duration
	CycleInUseBackstop time.Duration
	CycleEtaDuration   time.Duration

	DeviceHMACMaxSkew time.Duration

	PollMaxCommands int
}

func FromEnv() Config {
	return Config{
		DefaultTenant:      getenvDefault("DEFAULT_TENANT", "default"),
		CommandAckTimeout:  getenvDuration("COMMAND_ACK_TIMEOUT", 5*time.Minute),
		CommandFallbackTTL: getenvDuration("COMMAND_FALLBACK_TTL", 10*time.Minute),
		CyclePreUseTTL:     getenvDuration("CYCLE_PREUSE_TTL", 15*time.Minute),
		CycleInUseBackstop: getenvDuration("CYCLE_INUSE_BACKSTOP", 24*time.Hour),
		CycleEtaDuration:   getenvDuration("CYCLE_ETA_DURATION", 50*time.Minute),
		DeviceHMACMaxSkew:  getenvDuration("DEVICE_HMAC_MAX_SKEW", 5*time.Minute),
		PollMaxCommands:    getenvInt("POLL_MAX_COMMANDS", 10),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
