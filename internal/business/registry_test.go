package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_DefaultsToCafeOwner(t *testing.T) {
	tests := []struct {
		name string
		hint string
	}{
		{name: "empty hint", hint: ""},
		{name: "unknown hint", hint: "bogus"},
		{name: "explicit cafe owner", hint: "cafe-owner"},
		{name: "case mismatch", hint: "IT-FOUNDER"},
		{name: "whitespace", hint: " it-founder "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := Resolve(tt.hint)

			assert.Equal(t, RoleCafeOwner, resolved.Role)
			assert.Equal(t, "카페 김비서랩 사장님", resolved.DisplayName)
			require.NotNil(t, resolved.Dataset)
			assert.Equal(t, "카페 김비서랩", resolved.Dataset.Profile.Name)
		})
	}
}

func TestResolve_ITFounder(t *testing.T) {
	resolved := Resolve("it-founder")

	assert.Equal(t, RoleITFounder, resolved.Role)
	assert.Equal(t, "서울체인랩스 대표님", resolved.DisplayName)
	require.NotNil(t, resolved.Dataset)
	assert.Equal(t, "서울체인랩스", resolved.Dataset.Profile.Name)
}

func TestResolve_DatasetsAreDistinct(t *testing.T) {
	cafe := Resolve("")
	startup := Resolve("it-founder")

	assert.NotEqual(t, cafe.Dataset.Profile.ID, startup.Dataset.Profile.ID)
}
