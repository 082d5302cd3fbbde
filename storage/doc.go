// SPDX-License-Identifier: MIT
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package storage - persistent registry state
//
// A single LevelDB database holds every pool, the pools being
// distinguished by a one byte key prefix:
//
//	P → created pairs        pair key → 0x01
//	I → intents              pair key + owner → stake, sequence, locator
//	B → blacklisted tokens   token address → 0x01
//	S → registry state       "mode" → paused/terminated flags
//	                         "sequence" → insertion sequence counter
//
// The registry writes through after each successful mutation and
// reloads a Snapshot at startup.  Custody balances live outside this
// database, so restored rows are reinstated without custody calls.
package storage
