// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestAllOrder(t *testing.T) {
	want := []string{UserInterview, Survey, UsabilityTest, FieldStudy, CardSorting, ABTest, DiaryStudy}

	all := Default().All()
	require.Len(t, all, 7)
	for i, m := range all {
		assert.Equal(t, want[i], m.ID, "position %d", i)
	}
	assert.Equal(t, want, Default().IDs())
}

func TestFind(t *testing.T) {
	tests := []struct {
		id     string
		wantOK bool
		name   string
	}{
		{UserInterview, true, "In-depth User Interview"},
		{CardSorting, true, "Card Sorting"},
		{"focus-group", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			m, ok := Default().Find(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.name, m.Name)
			assert.Equal(t, tt.wantOK, Default().Has(tt.id))
		})
	}
}

func TestAllReturnsCopies(t *testing.T) {
	all := Default().All()
	all[0].Name = "changed"
	all[0].BestFor[0] = "changed"

	m, ok := Default().Find(UserInterview)
	require.True(t, ok)
	assert.Equal(t, "In-depth User Interview", m.Name)
	assert.Equal(t, "Exploring user needs", m.BestFor[0])
}

func TestEntriesComplete(t *testing.T) {
	for _, m := range Default().All() {
		t.Run(m.ID, func(t *testing.T) {
			assert.NotEmpty(t, m.Name)
			assert.NotEmpty(t, m.Description)
			assert.NotEmpty(t, m.BestFor)
			assert.NotEmpty(t, m.NotGoodFor)
			assert.NotEmpty(t, m.Timeframe)
			assert.NotEmpty(t, m.Participants)
			assert.Contains(t, []string{"low", "medium", "high"}, string(m.Cost))
			assert.NotEmpty(t, m.Skills)
			assert.NotEmpty(t, m.Deliverables)
		})
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "methods.xlsx")
	require.NoError(t, WriteXLSX(path, Default().All()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, xlsxHeaders, rows[0])
	assert.Equal(t, UserInterview, rows[1][0])
	assert.Equal(t, "Exploring user needs, Understanding motivation and emotion, Finding unmet needs", rows[1][3])
	assert.Equal(t, DiaryStudy, rows[7][0])
}
