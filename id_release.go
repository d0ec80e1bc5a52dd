// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

//go:build !contrail_debug

package contrail

// trailID is a zero-size placeholder in ordinary builds: the
// construction-order contract ("a handle is legal to use only with the
// trail produced by the builder that created it") is documented, not
// enforced, unless the binary is built with -tags contrail_debug. See
// id_debug.go for the checked variant.
type trailID struct{}

func newTrailID() trailID {
	return trailID{}
}

func (t *Trail) checkID(trailID) {}
