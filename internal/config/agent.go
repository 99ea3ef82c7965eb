package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// AgentConfig points at the remote semantic matching service. The timeouts
// are long on purpose: the agent runs heavy model inference per request, so
// this is a compute bound, not a network-latency bound.
type AgentConfig struct {
	BaseURL      string
	APIKey       string
	MatchTimeout time.Duration
	BatchTimeout time.Duration
}

var (
	agentConfig *AgentConfig
	agentOnce   sync.Once
)

func LoadAgentConfig() *AgentConfig {
	agentOnce.Do(func() {
		agentConfig = &AgentConfig{
			BaseURL:      os.Getenv("AGENT_SERVICE_URL"),
			APIKey:       os.Getenv("API_KEY_SECRET"),
			MatchTimeout: durationFromEnv("AGENT_MATCH_TIMEOUT", 90*time.Second),
			BatchTimeout: durationFromEnv("AGENT_BATCH_TIMEOUT", 120*time.Second),
		}
	})
	return agentConfig
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds * float64(time.Second))
}
