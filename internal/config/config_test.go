package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	// Empty values read as unset, shielding the test from the host env.
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("LEADERBOARD_LIMIT", "")

	cfg := Load()
	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want 3000", cfg.Port)
	}
	if cfg.LeaderboardLimit != 50 {
		t.Errorf("LeaderboardLimit = %d, want 50", cfg.LeaderboardLimit)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LEADERBOARD_LIMIT", "25")

	cfg := Load()
	if !cfg.IsProduction() {
		t.Error("ENV=production should be detected")
	}
	if cfg.LeaderboardLimit != 25 {
		t.Errorf("LeaderboardLimit = %d, want 25", cfg.LeaderboardLimit)
	}
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("LEADERBOARD_LIMIT", "plenty")

	if got := Load().LeaderboardLimit; got != 50 {
		t.Errorf("LeaderboardLimit = %d, want the 50 fallback", got)
	}
}
