package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader_RecordsStructure(t *testing.T) {
	seq, err := Lower("I ate $apples and $(n + 1) more", Dollar)
	require.NoError(t, err)
	h := seq.Header()
	assert.Equal(t, []string{"I ate ", " and ", " more"}, h.Fragments)
	assert.Equal(t, []string{"apples", "n + 1"}, h.Sources)
}

func TestPartSequence_String(t *testing.T) {
	seq, err := Lower("Hello, $name!", Dollar)
	require.NoError(t, err)
	assert.Equal(t, `["Hello, ", $(name), "!"]`, seq.String())
}

func TestPartSequence_FragmentsAndSources(t *testing.T) {
	seq, err := Lower("$a b $c", Dollar)
	require.NoError(t, err)
	assert.Equal(t, []string{"", " b ", ""}, seq.Fragments())
	assert.Equal(t, []string{"a", "c"}, seq.Sources())
}

func TestParseConvention(t *testing.T) {
	tests := []struct {
		in      string
		want    Convention
		wantErr bool
	}{
		{"dollar", Dollar, false},
		{"brace", Brace, false},
		{"", Dollar, false}, // default
		{"percent", Dollar, true},
	}
	for _, tt := range tests {
		got, err := ParseConvention(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestUsageContext(t *testing.T) {
	assert.False(t, IllegalUsage.Allowed())
	for _, c := range []UsageContext{
		CallArgument, ConstructorArgument, MixinArgument,
		TemplateArgument, PragmaMsgArgument, AssertMessageArgument,
	} {
		assert.True(t, c.Allowed(), c.String())
		assert.NotEqual(t, "illegal context", c.String())
	}
	assert.Equal(t, "illegal context", IllegalUsage.String())
}

func TestPartKind_String(t *testing.T) {
	assert.Equal(t, "fragment", Fragment.String())
	assert.Equal(t, "embedded", Embedded.String())
}

func TestLexError_Message(t *testing.T) {
	_, err := Lower("$(oops", Dollar)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 1")
	assert.Contains(t, err.Error(), "unbalanced")
}
