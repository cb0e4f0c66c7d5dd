// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package retry - resubmit operations that lost a lock race
package retry

import (
	"context"
	"time"

	"github.com/jpillora/backoff"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noteledger/fault"
)

// Policy - how often and how fast to retry
type Policy struct {
	Attempts int
	Min      time.Duration
	Max      time.Duration
}

// Default - a few quick attempts, locks are only held for the length
// of one operation
var Default = Policy{
	Attempts: 5,
	Min:      5 * time.Millisecond,
	Max:      200 * time.Millisecond,
}

// Do - run f until it returns anything other than a retryable error,
// the attempts are used up or the context ends
//
// f must read fresh state on every call
func Do(ctx context.Context, log *logger.L, policy Policy, name string, f func() error) error {
	b := &backoff.Backoff{
		Min:    policy.Min,
		Max:    policy.Max,
		Factor: 2,
		Jitter: true,
	}

	for {
		err := f()
		if !fault.IsErrRetryable(err) {
			return err
		}
		if int(b.Attempt())+1 >= policy.Attempts {
			log.Warnf("%s: giving up after %d attempts: %s", name, policy.Attempts, err)
			return err
		}

		delay := b.Duration()
		log.Debugf("%s: retry in %s: %s", name, delay, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}
