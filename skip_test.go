package thenvoitest

import "testing"

func TestSkipWithoutEnv_Skips(t *testing.T) {
	executed := false
	t.Run("unset", func(t *testing.T) {
		SkipWithoutEnv(t, "THENVOI_TEST_DEFINITELY_UNSET")
		executed = true
	})
	if executed {
		t.Error("test body ran despite missing env var")
	}
}

func TestSkipWithoutEnv_RunsWhenSet(t *testing.T) {
	t.Setenv("THENVOI_TEST_SET_VAR", "1")
	executed := false
	t.Run("set", func(t *testing.T) {
		SkipWithoutEnv(t, "THENVOI_TEST_SET_VAR")
		executed = true
	})
	if !executed {
		t.Error("test body should run when env var is set")
	}
}

func TestSkipWithoutEnvs_SkipsOnAnyMissing(t *testing.T) {
	t.Setenv("THENVOI_TEST_A", "1")
	executed := false
	t.Run("partial", func(t *testing.T) {
		SkipWithoutEnvs(t, "THENVOI_TEST_A", "THENVOI_TEST_B_UNSET")
		executed = true
	})
	if executed {
		t.Error("test body ran despite a missing env var")
	}
}

func TestSkipIf(t *testing.T) {
	executed := false
	t.Run("true", func(t *testing.T) {
		SkipIf(t, true, "condition holds")
		executed = true
	})
	if executed {
		t.Error("test body ran despite true condition")
	}

	t.Run("false", func(t *testing.T) {
		SkipIf(t, false, "condition holds")
		executed = true
	})
	if !executed {
		t.Error("test body should run when condition is false")
	}
}

func TestSkipInCI(t *testing.T) {
	t.Setenv("CI", "true")
	executed := false
	t.Run("ci", func(t *testing.T) {
		SkipInCI(t)
		executed = true
	})
	if executed {
		t.Error("test body ran in CI")
	}
}

func TestRequireRealBackend_SkipsWithoutKey(t *testing.T) {
	executed := false
	t.Run("no key", func(t *testing.T) {
		backend := RequireRealBackend(t, Settings{})
		executed = true
		_ = backend
	})
	if executed {
		t.Error("test body ran without a configured backend")
	}
}

func TestRequireRealBackend_ReturnsBackend(t *testing.T) {
	s := Settings{APIKey: "key", BaseURL: "http://host", WSURL: "ws://host"}
	backend := RequireRealBackend(t, s)
	if backend == nil || backend.APIKey != "key" {
		t.Errorf("backend = %+v, want configured target", backend)
	}
}
