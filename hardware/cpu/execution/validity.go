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

package execution

import (
	"github.com/dotneteer/spectnetgo/curated"
)

// Sentinel error returned by IsValid().
const (
	InvalidResult = "cpu: invalid result: %s"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(InvalidResult, "execution not finalised")
	}

	if r.Interrupt != NoInterrupt || r.Halted {
		if r.Defn != nil {
			return curated.Errorf(InvalidResult, "unexpected instruction definition")
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf(InvalidResult, "missing instruction definition")
	}

	// byte count. the displacement byte of the double prefixed tables is
	// counted by the definition
	if len(r.Bytes)-r.IgnoredPrefixes != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode of %s (%d instead of %d)",
			r.Defn.Mnemonic, len(r.Bytes)-r.IgnoredPrefixes, r.Defn.Bytes)
	}

	tacts := r.Tacts - r.WaitTacts - r.IgnoredPrefixes*4
	if tacts != r.Defn.Tacts && (r.Defn.TactsAlt == 0 || tacts != r.Defn.TactsAlt) {
		if r.Defn.IsConditional() {
			return curated.Errorf("cpu: number of tacts wrong for %s (%d instead of %d or %d)",
				r.Defn.Mnemonic, tacts, r.Defn.Tacts, r.Defn.TactsAlt)
		}
		return curated.Errorf("cpu: number of tacts wrong for %s (%d instead of %d)",
			r.Defn.Mnemonic, tacts, r.Defn.Tacts)
	}

	return nil
}
