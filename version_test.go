// Copyright 2026 The innohdr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inno

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripleCompare(t *testing.T) {
	assert.True(t, NewTriple(1, 2, 3).Less(NewTriple(1, 3, 0)))
	assert.True(t, NewTriple(5, 0, 0).AtLeast(NewTriple(4, 2, 2)))
	assert.False(t, NewTriple(5, 0, 0).Less(NewTriple(5, 0, 0)))
	assert.Equal(t, 0, NewTriple(6, 3, 0).Compare(NewTriple(6, 3, 0)))
}

func TestVersionAtLeastAndBefore(t *testing.T) {
	v := New(5, 5, 0, false, true)
	assert.True(t, v.AtLeast(5, 5, 0))
	assert.True(t, v.AtLeast(5, 4, 9))
	assert.False(t, v.AtLeast(5, 5, 1))
	assert.True(t, v.Before(6, 0, 0))
	assert.False(t, v.Before(5, 5, 0))
}

func TestVersionAtLeastISX(t *testing.T) {
	mainline := New(1, 3, 9, false, false)
	assert.False(t, mainline.AtLeastISX(2, 0, 0, 1, 3, 10))

	isx := New(1, 3, 10, true, false)
	assert.True(t, isx.AtLeastISX(2, 0, 0, 1, 3, 10))

	isxTooOld := New(1, 3, 5, true, false)
	assert.False(t, isxTooOld.AtLeastISX(2, 0, 0, 1, 3, 10))
}

func TestVersionString(t *testing.T) {
	v := New(6, 3, 0, true, true)
	assert.Equal(t, "6.3.0 (isx) (unicode)", v.String())

	plain := New(1, 2, 10, false, false)
	assert.Equal(t, "1.2.10", plain.String())
}
