package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByTag(t *testing.T) {
	records := sampleRecords()

	t.Run("CaseInsensitiveExact", func(t *testing.T) {
		got := FindByTag(records, "ur-001")
		require.Len(t, got, 1)
		assert.Equal(t, "UR-001", got[0].AssetTag)
	})

	t.Run("NoSubstringOrPrefix", func(t *testing.T) {
		for _, got := range FindByTag(records, "UR-001") {
			assert.NotEqual(t, "UR-0010", got.AssetTag)
		}
		assert.Empty(t, FindByTag(records, "UR-00"))
	})

	t.Run("StoredLowercaseMatchesUppercaseQuery", func(t *testing.T) {
		got := FindByTag(records, "  UR-002 ")
		require.Len(t, got, 1)
		assert.Equal(t, "ur-002", got[0].AssetTag)
	})

	t.Run("NoMatchIsEmptyNotNil", func(t *testing.T) {
		got := FindByTag(records, "UR-999")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("EmptyTag", func(t *testing.T) {
		assert.Empty(t, FindByTag(records, ""))
		assert.Empty(t, FindByTag(records, "   "))
	})

	t.Run("Duplicates", func(t *testing.T) {
		dup := append(sampleRecords(), records[0])
		assert.Len(t, FindByTag(dup, "UR-001"), 2)
	})
}
