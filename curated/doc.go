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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as fmt.Errorf(),
// but the pattern is retained so that the error can be identified later:
//
//	e := curated.Errorf("tapeformat: unknown block type (%#02x)", id)
//
//	if curated.Is(e, "tapeformat: unknown block type (%#02x)") {
//		...
//	}
//
// The Has() function checks whether a pattern occurs anywhere in the error
// chain. Values passed to Errorf() that are themselves errors form the chain.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). An uncurated error should be considered unexpected.
//
// Patterns that are tested for by other packages should be stored as exported
// const strings in the package that creates them. For example, the loader
// package exports the UnsupportedScheme pattern.
//
// The Error() implementation normalises the chain so that adjacent duplicate
// parts do not appear. Parts are separated by the sub-string ": ". So
// wrapping "loader: file not found" in the pattern "loader: %v" produces:
//
//	loader: file not found
//
// and not:
//
//	loader: loader: file not found
package curated
