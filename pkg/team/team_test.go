package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelToID(t *testing.T) {
	tests := []struct {
		label  string
		wantID int
		wantOK bool
	}{
		{"LG 트윈스", 3, true},
		{"키움 히어로즈", 10, true},
		{AllLabel, AllID, false},
		{"%25", AllID, false},
		{"", AllID, false},
		{"lg 트윈스", AllID, false},
	}

	for _, tt := range tests {
		id, ok := LabelToID(tt.label)
		assert.Equal(t, tt.wantID, id, "label %q", tt.label)
		assert.Equal(t, tt.wantOK, ok, "label %q", tt.label)
	}
}

func TestIDToLabel(t *testing.T) {
	label, ok := IDToLabel(4)
	assert.True(t, ok)
	assert.Equal(t, "두산 베어스", label)

	label, ok = IDToLabel(AllID)
	assert.True(t, ok)
	assert.Equal(t, AllLabel, label)

	label, ok = IDToLabel(99)
	assert.False(t, ok)
	assert.Equal(t, UnknownLabel, label)
}

func TestRoundTrip(t *testing.T) {
	for _, tm := range All() {
		id, ok := LabelToID(tm.Label)
		assert.True(t, ok)
		label, ok := IDToLabel(id)
		assert.True(t, ok)
		assert.Equal(t, tm.Label, label)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0].Label = "changed"

	label, _ := IDToLabel(1)
	assert.Equal(t, "KIA 타이거즈", label)
	assert.Len(t, All(), 10)
}

func TestIsValidLabel(t *testing.T) {
	assert.True(t, IsValidLabel(AllLabel))
	assert.True(t, IsValidLabel("한화 이글스"))
	assert.False(t, IsValidLabel("%25"))
}
