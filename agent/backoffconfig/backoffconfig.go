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

// Package backoffconfig builds the retry policies used by the supervisor.
package backoffconfig

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultReconnectInterval = 5 * time.Second
	minReconnectInterval     = 10 * time.Millisecond
	maxReconnectInterval     = time.Hour
)

// GetConstantBackoff returns a policy that waits interval before every retry
// and never gives up. Non-positive intervals use the default; others are
// bounded to [10ms, 1h].
func GetConstantBackoff(interval time.Duration) *backoff.ConstantBackOff {
	if interval <= 0 {
		interval = defaultReconnectInterval
	}
	return backoff.NewConstantBackOff(bound(interval, minReconnectInterval, maxReconnectInterval))
}

// bound returns a duration that is constrained to be within a particular range (min, max).
// If number is within the indicated range, then the number is returned.  If number is less than
// min, then min is returned.  If number is greater than max, then max is returned.
func bound(number time.Duration, min time.Duration, max time.Duration) time.Duration {
	if number < min {
		return min
	}
	if max < number {
		return max
	}
	return number
}
