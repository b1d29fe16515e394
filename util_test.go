// Copyright 2025 The gbkf Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package gbkf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet(t *testing.T) {
	set := make(stringSet)
	assert.True(t, set.AllLen(3))

	set.Add("abc")
	set.Add("abc")
	assert.True(t, set.Contains("abc"))
	assert.False(t, set.Contains("ab"))
	assert.Len(t, set, 1)

	assert.True(t, set.AllLen(3))
	set.Add("de")
	assert.False(t, set.AllLen(3))
	assert.False(t, set.AllLen(2))
}
