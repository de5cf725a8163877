package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix namespaces every configuration variable.
const EnvPrefix = "TELEBRIDGE_"

func env(key, def string) string {
	if v, ok := os.LookupEnv(EnvPrefix + key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func envInt(key string, def int) int {
	if n, err := strconv.Atoi(env(key, "")); err == nil {
		return n
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if n, err := strconv.ParseInt(env(key, ""), 10, 64); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(env(key, "")); err == nil {
		return b
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(env(key, "")); err == nil {
		return d
	}
	return def
}
