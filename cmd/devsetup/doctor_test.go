package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/devsetup/internal/config"
	"github.com/conn-castle/devsetup/internal/doctor"
)

func TestDoctorHealthyConfig(t *testing.T) {
	path := withFakes(t, &brewFake{}, &scriptedUI{})
	_, _, err := config.NewStore(path).LoadOrInit()
	require.NoError(t, err)

	var stdout bytes.Buffer
	err = execute([]string{"devsetup", "--config", path, "doctor"}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Configuration loaded successfully (5 basic tools, 6 stages)")
	assert.Contains(t, out, "brew responds to its version probe (Homebrew 4.3.0)")
	assert.Contains(t, out, "Interactive terminal detected")
	assert.Contains(t, out, "All systems go!")
}

func TestDoctorMissingConfigFails(t *testing.T) {
	path := withFakes(t, &brewFake{}, &scriptedUI{})
	isInteractiveFunc = func() bool { return false }

	var stdout bytes.Buffer
	err := execute([]string{"devsetup", "--config", path, "doctor"}, &stdout, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, "doctor checks failed", err.Error())

	out := stdout.String()
	assert.Contains(t, out, "[FAIL]")
	assert.Contains(t, out, "Config file not found")
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "Run with --profile basic")
	assert.Contains(t, out, "Some checks failed")
}

func TestPrintRecommendationMultiline(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, doctor.Result{
		Status:         doctor.StatusWarn,
		CheckName:      "X",
		Message:        "msg",
		Recommendation: "first\n\nthird",
	})
	assert.Equal(t, "[WARN] X               msg\n"+
		"       💡 first\n"+
		"          \n"+
		"          third\n", out.String())
}
