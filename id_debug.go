// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build contrail_debug

package contrail

import "github.com/google/uuid"

// trailID tags a Trail/TrailBuilder and every handle constructed from it,
// so that using a handle against the wrong Trail can be caught instead of
// silently reading garbage or panicking with a confusing
// IndexOutOfRangeError. This tracking only exists in builds tagged
// contrail_debug; see id_release.go for the zero-cost production variant.
type trailID uuid.UUID

func newTrailID() trailID {
	return trailID(uuid.New())
}

// checkID panics with CrossTrailError if id was not issued by t's
// builder.
func (t *Trail) checkID(id trailID) {
	if t.id != id {
		panic(CrossTrailError{})
	}
}
