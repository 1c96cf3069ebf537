package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shellbridge/test/integration/harness"
)

type hostProfileJSON struct {
	AuthMethod   string
	Host         string
	IdentityFile string
	Name         string
	Port         int
	Username     string
}

func TestHostsList(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "empty list shows hint",
			args:         []string{"hosts", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No host profiles")
			},
		},
		{
			name:         "hosts without subcommand lists",
			args:         []string{"hosts"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No host profiles")
			},
		},
		{
			name: "table shows saved profile",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "hosts", "add", "web", "web.example.com", "-u", "deploy", "-p", "2222"))
			},
			args:         []string{"hosts", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "web")
				harness.AssertStdoutContains(t, result, "deploy@web.example.com:2222")
				harness.AssertStdoutContains(t, result, "password")
				harness.AssertStdoutContains(t, result, "never")
			},
		},
		{
			name: "json format",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "hosts", "add", "db", "10.0.0.5", "--auth", "agent"))
			},
			args:         []string{"hosts", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				var profiles []hostProfileJSON
				harness.AssertValidJSON(t, result, &profiles)
				require.Len(t, profiles, 1)
				assert.Equal(t, "db", profiles[0].Name)
				assert.Equal(t, "10.0.0.5", profiles[0].Host)
				assert.Equal(t, 22, profiles[0].Port)
				assert.Equal(t, "agent", profiles[0].AuthMethod)
				assert.Equal(t, harness.TestUser, profiles[0].Username)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestHostsAdd(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(t *testing.T, env *harness.TestEnvironment)
		args         []string
		wantExitCode int
		wantStdout   string
		wantStderr   string
	}{
		{
			name:         "add profile",
			args:         []string{"hosts", "add", "web", "web.example.com"},
			wantExitCode: 0,
			wantStdout:   "Host profile 'web' saved",
		},
		{
			name: "duplicate name fails",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "hosts", "add", "web", "web.example.com"))
			},
			args:         []string{"hosts", "add", "web", "other.example.com"},
			wantExitCode: 1,
			wantStderr:   "already exists",
		},
		{
			name: "force overwrites",
			setup: func(t *testing.T, env *harness.TestEnvironment) {
				harness.AssertSuccess(t, harness.RunCommand(t, env, "hosts", "add", "web", "web.example.com"))
			},
			args:         []string{"hosts", "add", "web", "other.example.com", "--force"},
			wantExitCode: 0,
			wantStdout:   "Host profile 'web' saved",
		},
		{
			name:         "key auth without identity fails",
			args:         []string{"hosts", "add", "web", "web.example.com", "--auth", "key"},
			wantExitCode: 1,
			wantStderr:   "identity file is required",
		},
		{
			name:         "invalid name fails",
			args:         []string{"hosts", "add", "my web", "web.example.com"},
			wantExitCode: 1,
			wantStderr:   "invalid characters",
		},
		{
			name:         "unknown auth method rejected by flags",
			args:         []string{"hosts", "add", "web", "web.example.com", "--auth", "kerberos"},
			wantExitCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			if tt.setup != nil {
				tt.setup(t, env)
			}

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}
			if tt.wantStdout != "" {
				harness.AssertStdoutContains(t, result, tt.wantStdout)
			}
			if tt.wantStderr != "" {
				harness.AssertStderrContains(t, result, tt.wantStderr)
			}
		})
	}
}

func TestHostsAddForceReplacesTarget(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	harness.AssertSuccess(t, harness.RunCommand(t, env, "hosts", "add", "web", "web.example.com"))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "hosts", "add", "web", "other.example.com", "-f", "-p", "2200"))

	result := harness.RunCommand(t, env, "hosts", "list", "--format", "json")
	harness.AssertSuccess(t, result)

	var profiles []hostProfileJSON
	harness.AssertValidJSON(t, result, &profiles)
	require.Len(t, profiles, 1)
	assert.Equal(t, "other.example.com", profiles[0].Host)
	assert.Equal(t, 2200, profiles[0].Port)
}

func TestHostsDel(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "hosts", "del", "web")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "host profile not found")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "hosts", "add", "web", "web.example.com"))

	result = harness.RunCommand(t, env, "hosts", "del", "web")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Host profile 'web' deleted")

	result = harness.RunCommand(t, env, "hosts", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No host profiles")
}
