package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", StyleBuilder, false},
		{"builder", StyleBuilder, false},
		{"Builder", StyleBuilder, false},
		{"direct", StyleDirect, false},
		{"setter", StyleDirect, false},
		{" Setter ", StyleDirect, false},
		{"chain", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolicyAndDialect(t *testing.T) {
	p, err := ParsePolicy("flexible")
	require.NoError(t, err)
	assert.Equal(t, PolicyFlexible, p)

	p, err = ParsePolicy("STRICT")
	require.NoError(t, err)
	assert.Equal(t, PolicyStrict, p)

	_, err = ParsePolicy("loose")
	assert.Error(t, err)

	d, err := ParseDialect("golang")
	require.NoError(t, err)
	assert.Equal(t, DialectGo, d)

	_, err = ParseDialect("kotlin")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	assert.Equal(t, "builder", StyleBuilder.String())
	assert.Equal(t, "direct", StyleDirect.String())
	assert.Equal(t, "strict", PolicyStrict.String())
	assert.Equal(t, "flexible", PolicyFlexible.String())
	assert.Equal(t, "java", DialectJava.String())
	assert.Equal(t, "go", DialectGo.String())
	assert.Equal(t, "Style(7)", Style(7).String())
	assert.False(t, Style(7).Valid())
}

func TestTextRoundTripThroughYAML(t *testing.T) {
	type holder struct {
		Style   Style   `yaml:"style"`
		Policy  Policy  `yaml:"policy"`
		Dialect Dialect `yaml:"dialect"`
	}

	var h holder
	err := yaml.Unmarshal([]byte("style: setter\npolicy: fuzzy\ndialect: go\n"), &h)
	require.NoError(t, err)
	assert.Equal(t, holder{StyleDirect, PolicyFlexible, DialectGo}, h)

	out, err := yaml.Marshal(h)
	require.NoError(t, err)
	assert.Contains(t, string(out), "style: direct")
	assert.Contains(t, string(out), "policy: flexible")

	err = yaml.Unmarshal([]byte("style: spiral\n"), &h)
	assert.Error(t, err)
}
