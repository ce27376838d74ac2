// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build !windows,!plan9

package limits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLimits(t *testing.T) {
	require.Nil(t, SetLimits())

	limit, err := GetLimits()
	require.Nil(t, err)
	assert.True(t, limit.Cur >= fileLimitMin)
}
