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

package loader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/loader"
	"github.com/dotneteer/spectnetgo/test"
)

func TestKind(t *testing.T) {
	test.ExpectEquality(t, loader.NewLoader("game.tzx", "").Kind, loader.KindTzx)
	test.ExpectEquality(t, loader.NewLoader("game.TAP", "auto").Kind, loader.KindTap)
	test.ExpectEquality(t, loader.NewLoader("tapes.zip/game.wav", "").Kind, loader.KindWav)
	test.ExpectEquality(t, loader.NewLoader("game.tzx.zip", "").Kind, loader.KindTzx)
	test.ExpectEquality(t, loader.NewLoader("game.xyz", "").Kind, loader.KindAuto)
	test.ExpectEquality(t, loader.NewLoader("game.xyz", "sna").Kind, loader.KindSna)

	test.ExpectSuccess(t, loader.KindMp3.IsTape())
	test.ExpectSuccess(t, loader.KindMp3.IsSound())
	test.ExpectFailure(t, loader.KindTap.IsSound())
	test.ExpectFailure(t, loader.KindRom.IsTape())
}

func TestShortName(t *testing.T) {
	test.ExpectEquality(t, loader.NewLoader("tapes/Manic Miner.tzx", "").ShortName(), "Manic Miner")
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "code.bin")
	data := []byte{0x3e, 0x01, 0x76}
	test.DemandSuccess(t, os.WriteFile(fn, data, 0600))

	ld := loader.NewLoader(fn, "")
	test.ExpectFailure(t, ld.HasLoaded())
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, string(ld.Data), string(data))
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(data)))

	bad := loader.NewLoader(fn, "")
	bad.Hash = "0000"
	err := bad.Load()
	test.ExpectSuccess(t, curated.Is(err, loader.UnexpectedHash))
	test.ExpectFailure(t, bad.HasLoaded())

	missing := loader.NewLoader(filepath.Join(t.TempDir(), "missing.tap"), "")
	test.ExpectSuccess(t, curated.Is(missing.Load(), loader.LoadError))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/game.tap" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte{0x13, 0x00})
	}))
	defer srv.Close()

	ld := loader.NewLoader(srv.URL+"/game.tap", "")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 2)
	test.ExpectEquality(t, ld.Kind, loader.KindTap)

	missing := loader.NewLoader(srv.URL+"/other.tap", "")
	test.ExpectFailure(t, missing.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	ld := loader.NewLoader("ftp://example.com/game.tap", "")
	test.ExpectSuccess(t, curated.Is(ld.Load(), loader.UnsupportedScheme))
}
