// Copyright 2026 Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may not
// use this file except in compliance with the License. A copy of the
// License is located at
//
// http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
// either express or implied. See the License for the specific language governing
// permissions and limitations under the License.

package backoffconfig

import (
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type BackoffConfigTestSuite struct {
	suite.Suite
}

func TestBackoffConfigTestSuite(t *testing.T) {
	suite.Run(t, new(BackoffConfigTestSuite))
}

func (suite *BackoffConfigTestSuite) TestBound_ReturnsNumberWhenNumberIsInRange() {
	assert.Equal(suite.T(), 10*time.Second, bound(10*time.Second, time.Second, time.Minute))
}

func (suite *BackoffConfigTestSuite) TestBound_ReturnsMinWhenNumberLessThanMin() {
	assert.Equal(suite.T(), time.Second, bound(time.Millisecond, time.Second, time.Minute))
}

func (suite *BackoffConfigTestSuite) TestBound_ReturnsMaxWhenNumberGreaterThanMax() {
	assert.Equal(suite.T(), time.Minute, bound(time.Hour, time.Second, time.Minute))
}

func (suite *BackoffConfigTestSuite) TestGetConstantBackoff_IsFlatAndNeverStops() {
	policy := GetConstantBackoff(5 * time.Second)

	for i := 0; i < 100; i++ {
		assert.Equal(suite.T(), 5*time.Second, policy.NextBackOff())
	}
	assert.NotEqual(suite.T(), backoff.Stop, policy.NextBackOff())
}

func (suite *BackoffConfigTestSuite) TestGetConstantBackoff_DefaultsNonPositiveInterval() {
	assert.Equal(suite.T(), defaultReconnectInterval, GetConstantBackoff(0).NextBackOff())
	assert.Equal(suite.T(), defaultReconnectInterval, GetConstantBackoff(-time.Second).NextBackOff())
}

func (suite *BackoffConfigTestSuite) TestGetConstantBackoff_BoundsInterval() {
	assert.Equal(suite.T(), minReconnectInterval, GetConstantBackoff(time.Nanosecond).NextBackOff())
	assert.Equal(suite.T(), maxReconnectInterval, GetConstantBackoff(24*time.Hour).NextBackOff())
}
