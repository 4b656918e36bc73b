// Copyright 2024 velours
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sequencenumber

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGeneratorWith("CMD",
		func(_ time.Time) int64 { return 1234554320123 },
		func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name     string
		ownerID  int64
		contains string
	}{
		{
			name:     "ID不足四位补零",
			ownerID:  7,
			contains: "0007",
		},
		{
			name:     "ID取后四位",
			ownerID:  123456789,
			contains: "6789",
		},
		{
			name:     "ID后四位恰好为零",
			ownerID:  123450000,
			contains: "0000",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn, err := gen.Generate(tc.ownerID)
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(sn, "CMD"))
			assert.Contains(t, sn, tc.contains)
			assert.Equal(t, len("CMD")+32, len(sn))
		})
	}
}

func TestGenerator_Generate_Unique(t *testing.T) {
	gen := NewGenerator("CMD")
	sn1, err := gen.Generate(1234)
	assert.NoError(t, err)
	sn2, err := gen.Generate(1234)
	assert.NoError(t, err)
	assert.NotEqual(t, sn1, sn2)
}
