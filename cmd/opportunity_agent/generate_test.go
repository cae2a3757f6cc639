package main

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCommand_ListIdea(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate", "--category", "businesses", "--seed", "42")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed")
	assert.NotEmpty(t, strings.TrimSpace(string(output)))
}

func TestGenerateCommand_TemplatedIdea(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate", "--category", "jobs", "--templated", "--seed", "42")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed")
	assert.NotEmpty(t, strings.TrimSpace(string(output)))
}

func TestGenerateCommand_UnknownCategoryPrintsSentinel(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate", "--category", "franchises")
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "unknown category is a sentinel, not a failure")
	assert.Contains(t, string(output), "No ideas available for this category yet.")
}

func TestGenerateCommand_SeedReproducesOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	first, err := exec.Command(binaryPath, "generate", "--category", "contracts", "--seed", "7").CombinedOutput()
	assert.NoError(t, err)
	second, err := exec.Command(binaryPath, "generate", "--category", "contracts", "--seed", "7").CombinedOutput()
	assert.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestGenerateCommand_MissingCategoryFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "required")
}
