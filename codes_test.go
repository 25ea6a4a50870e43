// SPDX-License-Identifier: GPL-3.0-or-later

package stubdns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordTypeByValue(t *testing.T) {
	tests := []struct {
		name     string
		value    uint16
		expected string
	}{
		{"A", 1, "A"},
		{"NS", 2, "NS"},
		{"CNAME", 5, "CNAME"},
		{"UnknownAAAA", 28, ""},
		{"UnknownZero", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := RecordTypeByValue(tt.value)
			if tt.expected == "" {
				require.Nil(t, rt)
				return
			}
			require.NotNil(t, rt)
			require.Equal(t, tt.expected, rt.Name)
			require.Equal(t, tt.value, rt.Value)
			require.NotEmpty(t, rt.Meaning)
		})
	}
}

func TestRecordClassByValue(t *testing.T) {
	rc := RecordClassByValue(1)
	require.NotNil(t, rc)
	require.Equal(t, "IN", rc.Name)

	require.Nil(t, RecordClassByValue(3)) // CHAOS is not in the table
}
