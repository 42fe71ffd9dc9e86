package mapping

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapper-generator/internal/options"
	"mapper-generator/internal/plan"
)

const sampleYAML = `
version: "1"
defaults:
  policy: flexible
  dialect: go
  packages: [./store, ./warehouse]
requests:
  - method: CustomerToWarehouse
    source: store.Customer
    destination:
      name: warehouse.Customer
      fields: [ID, Email, Phone]
    style: direct
  - method: ToDto
    source:
      name: User
      fields: [id, name]
    destination:
      name: UserDto
      fields: []
    dialect: java
    policy: strict
    in_place: true
`

type fakeResolver map[string]plan.TypeRef

func (f fakeResolver) TypeRef(name string) (plan.TypeRef, error) {
	ref, ok := f[name]
	if !ok {
		return plan.TypeRef{}, errors.New("struct " + name + " not found")
	}

	return ref, nil
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	require.NotNil(t, f.Defaults.Policy)
	assert.Equal(t, options.PolicyFlexible, *f.Defaults.Policy)
	assert.Nil(t, f.Defaults.Style)
	assert.Equal(t, []string{"./store", "./warehouse"}, f.Defaults.Packages)

	require.Len(t, f.Requests, 2)

	first := f.Requests[0]
	assert.Equal(t, "CustomerToWarehouse", first.Method)
	assert.Equal(t, "store.Customer", first.Source.Name)
	assert.True(t, first.Source.Discovered())
	assert.Equal(t, []string{"ID", "Email", "Phone"}, first.Destination.Fields)
	require.NotNil(t, first.Style)
	assert.Equal(t, options.StyleDirect, *first.Style)

	second := f.Requests[1]
	assert.False(t, second.Destination.Discovered())
	assert.Empty(t, second.Destination.Fields)
	require.NotNil(t, second.InPlace)
	assert.True(t, *second.InPlace)

	assert.True(t, f.NeedsDiscovery())
}

func TestParse_DefaultVersion(t *testing.T) {
	f, err := Parse([]byte("requests: []\n"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
	assert.Empty(t, f.Requests)
	assert.False(t, f.NeedsDiscovery())

	f, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad version", `version: "2"`, "unsupported request file version"},
		{"unknown key", "requests:\n  - method: m\n    sauce: S\n", "sauce"},
		{"bad style", "defaults:\n  style: zigzag\n", "zigzag"},
		{"bad type spec", "requests:\n  - method: m\n    source: [a, b]\n", "expected type name"},
		{"malformed", "requests: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestFile_Requests(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	resolver := fakeResolver{
		"store.Customer": {Name: "store.Customer", Fields: []string{"ID", "Email", "FullName"}},
	}

	reqs, err := f.BuildRequests(resolver)
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.Equal(t, plan.Request{
		Method:      "CustomerToWarehouse",
		Source:      plan.TypeRef{Name: "store.Customer", Fields: []string{"ID", "Email", "FullName"}},
		Destination: plan.TypeRef{Name: "warehouse.Customer", Fields: []string{"ID", "Email", "Phone"}},
		Style:       options.StyleDirect,
		Policy:      options.PolicyFlexible,
		Dialect:     options.DialectGo,
	}, reqs[0])

	assert.Equal(t, options.StyleBuilder, reqs[1].Style)
	assert.Equal(t, options.PolicyStrict, reqs[1].Policy)
	assert.Equal(t, options.DialectJava, reqs[1].Dialect)
	assert.True(t, reqs[1].InPlace)
	assert.Empty(t, reqs[1].Destination.Fields)
}

func TestFile_RequestsDiscoveryErrors(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	_, err = f.BuildRequests(nil)
	assert.ErrorContains(t, err, "request 0 (CustomerToWarehouse): source")
	assert.ErrorContains(t, err, "no field list")

	_, err = f.BuildRequests(fakeResolver{})
	assert.ErrorContains(t, err, "not found")
}

func TestMarshal_RoundTrip(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)

	// Discovered types stay in their short form.
	assert.Contains(t, string(data), "source: store.Customer\n")
	assert.Contains(t, string(data), "style: direct\n")
	assert.Contains(t, string(data), "fields: []\n")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestWriteFile_LoadFile(t *testing.T) {
	direct := options.StyleDirect
	f := &File{
		Version:  CurrentVersion,
		Defaults: Defaults{Style: &direct},
		Requests: []Entry{{
			Method:      "toDto",
			Source:      TypeSpec{Name: "User", Fields: []string{"id"}},
			Destination: TypeSpec{Name: "UserDto", Fields: []string{"id"}},
		}},
	}

	path := filepath.Join(t.TempDir(), "nested", "requests.yaml")
	require.NoError(t, WriteFile(f, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFreeze(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	reqs, err := f.BuildRequests(fakeResolver{
		"store.Customer": {Name: "store.Customer", Fields: []string{"ID", "Email"}},
	})
	require.NoError(t, err)

	frozen := Freeze(reqs)
	assert.False(t, frozen.NeedsDiscovery())

	path := filepath.Join(t.TempDir(), "frozen.yaml")
	require.NoError(t, WriteFile(frozen, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- ID\n")
	assert.Contains(t, string(data), "in_place: true\n")

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	again, err := loaded.BuildRequests(nil)
	require.NoError(t, err)
	assert.Equal(t, reqs, again)
}
