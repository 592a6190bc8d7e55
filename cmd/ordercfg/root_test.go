package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCommand_HasSubcommands verifies root command structure
func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")

	subcommands := make(map[string]bool)
	for _, c := range cmd.Commands() {
		subcommands[c.Name()] = true
	}

	assert.True(t, subcommands["check"], "check subcommand should exist")
	assert.True(t, subcommands["inspect"], "inspect subcommand should exist")
	assert.True(t, subcommands["template"], "template subcommand should exist")
}

// TestRootCommand_ConfigFlag verifies --config flag exists
func TestRootCommand_ConfigFlag(t *testing.T) {
	cmd := getRootCmd()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag, "--config flag should exist")
	assert.Equal(t, "string", configFlag.Value.Type(), "--config should be string type")
}

// TestRootCommand_Help verifies help text includes usage
func TestRootCommand_Help(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "ordercfg", "Help should mention ordercfg")
	assert.Contains(t, helpText, "input file", "Help should mention input files")
	assert.Contains(t, helpText, "Available Commands", "Help should list commands")
}

// TestRootCommand_VersionFlag verifies --version flag
func TestRootCommand_VersionFlag(t *testing.T) {
	cmd := getRootCmd()
	cmd.Version = "test-version"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "test-version",
		"Version output should contain version string")
}

// TestRootCommand_PersistentFlags verifies persistent flags are inherited
func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := getRootCmd()

	var checkCmd *cobra.Command
	for _, c := range cmd.Commands() {
		if c.Name() == "check" {
			checkCmd = c
			break
		}
	}
	require.NotNil(t, checkCmd)

	inheritedConfig := checkCmd.InheritedFlags().Lookup("config")
	assert.NotNil(t, inheritedConfig, "check should inherit --config flag")
	inheritedVerbose := checkCmd.InheritedFlags().Lookup("verbose")
	assert.NotNil(t, inheritedVerbose, "check should inherit --verbose flag")
}

// TestCheckCommand_JobsFlag verifies check --jobs flag
func TestCheckCommand_JobsFlag(t *testing.T) {
	cmd := getRootCmd()

	var checkCmd *cobra.Command
	for _, c := range cmd.Commands() {
		if c.Name() == "check" {
			checkCmd = c
			break
		}
	}
	require.NotNil(t, checkCmd, "check subcommand should exist")

	jobsFlag := checkCmd.Flags().Lookup("jobs")
	require.NotNil(t, jobsFlag, "--jobs flag should exist on check command")
	assert.Equal(t, "int", jobsFlag.Value.Type(), "--jobs should be int type")
}

// TestTemplateCommand_Flags verifies template command flags
func TestTemplateCommand_Flags(t *testing.T) {
	cmd := getRootCmd()

	var templateCmd *cobra.Command
	for _, c := range cmd.Commands() {
		if c.Name() == "template" {
			templateCmd = c
			break
		}
	}
	require.NotNil(t, templateCmd, "template subcommand should exist")

	outputFlag := templateCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag, "--output flag should exist on template command")

	forceFlag := templateCmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag, "--force flag should exist on template command")
	assert.Equal(t, "bool", forceFlag.Value.Type(), "--force should be boolean")
}

// TestRootCommand_ValidArgs verifies root command rejects unknown commands
func TestRootCommand_ValidArgs(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"invalid-arg"})
	err := cmd.Execute()

	assert.Error(t, err, "Root command should reject invalid arguments")
	errOutput := buf.String()
	assert.True(t,
		strings.Contains(errOutput, "unknown") || strings.Contains(errOutput, "invalid"),
		"Error should mention unknown or invalid command")
}

// TestCheckCommand_RequiresArgs verifies check needs at least one file
func TestCheckCommand_RequiresArgs(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetErr(buf)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"check"})
	err := cmd.Execute()

	assert.Error(t, err, "check without files should fail")
}
