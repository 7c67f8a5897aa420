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

package loader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dotneteer/spectnetgo/archivefs"
	"github.com/dotneteer/spectnetgo/curated"
)

// Sentinel error patterns.
const (
	UnsupportedScheme = "loader: unsupported URL scheme (%s)"
	UnexpectedHash    = "loader: unexpected hash value"
	LoadError         = "loader: %v"
)

// Loader specifies the data to load. If the Kind is KindAuto the filename
// extension decides what is loaded.
type Loader struct {
	// filename of the data to load. can be a URL
	Filename string

	Kind Kind

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The kind argument will be used to set the Kind field, unless the argument
// is either "AUTO" or the empty string. In which case the file extension is
// used to set the field.
func NewLoader(filename string, kind string) Loader {
	ld := Loader{
		Filename: filename,
		Kind:     KindAuto,
	}

	kind = strings.TrimSpace(strings.ToUpper(kind))
	if kind != string(KindAuto) && kind != "" {
		ld.Kind = Kind(kind)
	} else {
		ld.Kind = KindFromFilename(filename)
	}

	return ld
}

func (ld Loader) String() string {
	return fmt.Sprintf("%s (%s)", ld.ShortName(), ld.Kind)
}

// ShortName returns a shortened version of the filename.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Reader returns a reader of the loaded data. Load() must have been called.
func (ld Loader) Reader() io.ReadSeeker {
	return bytes.NewReader(ld.Data)
}

// Load the data. Filenames with a valid scheme will use that method to load
// the data. Currently supported schemes are HTTP and local files. Local files
// can be inside a zip archive.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		r, size, err := archivefs.Open(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		if c, ok := r.(io.Closer); ok {
			defer c.Close()
		}

		ld.Data = make([]byte, size)
		_, err = io.ReadFull(r, ld.Data)
		if err != nil {
			ld.Data = nil
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(UnexpectedHash)
	}

	ld.Hash = hash

	if ld.Kind == KindAuto {
		ld.Kind = KindFromFilename(ld.Filename)
	}

	return nil
}
