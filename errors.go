// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package contrail

// CrossTrailError is panicked (in builds tagged contrail_debug only) when
// a Value, Array, or collection handle constructed from one TrailBuilder
// is used against a different Trail. Outside of contrail_debug builds
// this situation is undefined behavior per the construction order
// contract, rather than a checked error.
type CrossTrailError struct{}

func (CrossTrailError) Error() string {
	return "contrail: handle used with a trail other than the one its builder produced"
}
