package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/vitewind/internal/cmdutil"
	"github.com/schmitthub/vitewind/internal/iostreams/iostreamstest"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		want    string
	}{
		{name: "version only", version: "1.2.3", want: "vitewind version 1.2.3\n"},
		{name: "leading v stripped", version: "v1.2.3", want: "vitewind version 1.2.3\n"},
		{name: "version with commit", version: "1.2.3", commit: "abc123", want: "vitewind version 1.2.3 (abc123)\n"},
		{name: "empty version", want: "vitewind version DEV\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.version, tt.commit))
		})
	}
}

func TestNewCmdVersion(t *testing.T) {
	tio := iostreamstest.New()
	f := &cmdutil.Factory{IOStreams: tio.IOStreams, Version: "0.4.0", Commit: "deadbeef"}

	cmd := NewCmdVersion(f)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "vitewind version 0.4.0 (deadbeef)\n", tio.OutBuf.String())
}
