package orb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		endpoint string
		want     []string
	}{
		{
			name:     "appends flag with default endpoint",
			args:     []string{"motion_ds", "inst1"},
			endpoint: "",
			want:     []string{"motion_ds", "inst1", EndpointFlag, DefaultEndpoint},
		},
		{
			name:     "appends flag with explicit endpoint",
			args:     []string{"plc_ds", "vacuum"},
			endpoint: "giop:tcp:192.168.1.5:",
			want:     []string{"plc_ds", "vacuum", EndpointFlag, "giop:tcp:192.168.1.5:"},
		},
		{
			name:     "program name only",
			args:     []string{"platform_ds"},
			endpoint: "",
			want:     []string{"platform_ds", EndpointFlag, DefaultEndpoint},
		},
		{
			name:     "existing flag is kept",
			args:     []string{"motion_ds", "inst1", "-ORBendPoint", "giop:tcp::5000"},
			endpoint: "",
			want:     []string{"motion_ds", "inst1", "-ORBendPoint", "giop:tcp::5000"},
		},
		{
			name:     "existing flag in key=value form",
			args:     []string{"motion_ds", "-ORBendPoint=giop:tcp::5000"},
			endpoint: "",
			want:     []string{"motion_ds", "-ORBendPoint=giop:tcp::5000"},
		},
		{
			name:     "flag name matched case-insensitively",
			args:     []string{"motion_ds", "-orbendpoint", "giop:tcp::"},
			endpoint: "giop:tcp:10.0.0.1:",
			want:     []string{"motion_ds", "-orbendpoint", "giop:tcp::"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FixEndpoint(tt.args, tt.endpoint)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFixEndpoint_Idempotent(t *testing.T) {
	args := []string{"six_dof_ds", "hexapod"}

	once := FixEndpoint(args, "")
	twice := FixEndpoint(once, "")

	assert.Equal(t, once, twice)

	count := 0
	for _, a := range twice {
		if a == EndpointFlag {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestFixEndpoint_DoesNotMutateInput(t *testing.T) {
	args := make([]string, 2, 8)
	args[0], args[1] = "motion_ds", "inst1"

	got := FixEndpoint(args, "")
	require.Len(t, got, 4)

	assert.Equal(t, []string{"motion_ds", "inst1"}, args)
	assert.Equal(t, "", args[:4][2], "spare capacity of the input must stay untouched")

	got[0] = "changed"
	assert.Equal(t, "motion_ds", args[0])
}

func TestFixEndpoint_NilArgs(t *testing.T) {
	got := FixEndpoint(nil, "")
	assert.Equal(t, []string{EndpointFlag, DefaultEndpoint}, got)
}

func TestHasEndpoint_IgnoresProgramName(t *testing.T) {
	assert.False(t, HasEndpoint([]string{"-ORBendPoint"}))
	assert.True(t, HasEndpoint([]string{"ds", "-ORBendPoint", "giop:tcp::"}))
	assert.False(t, HasEndpoint([]string{"ds", "-ORBendPointPublish", "giop:tcp::"}))
}
