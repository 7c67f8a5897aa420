// This file is part of SpectNetGo.
//
// SpectNetGo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SpectNetGo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SpectNetGo.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles functions useful for testing purposes, in conjunction
// with the standard go test harness.
//
// The Expect*() functions report a test failure with t.Errorf() and allow the
// test to continue. The Demand*() functions meanwhile, report with t.Fatalf()
// and end the test immediately. Both families accept an optional list of tags
// that are prefixed to the failure message. Tags are useful when the check is
// inside a loop:
//
//	for i, v := range values {
//		test.ExpectEquality(t, v, expected[i], i)
//	}
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions. For a bool, true is success. For an error, nil is
// success. The untyped nil value is considered a success because of how errors
// are usually returned.
//
// The CompareWriter and RingWriter types implement the io.Writer interface and
// are used to capture output for comparison.
package test
