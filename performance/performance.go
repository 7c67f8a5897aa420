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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dotneteer/spectnetgo/hardware"
)

// the emulation runs for this long before measurement begins to allow the
// frame rate to settle down
var leadTime = 2 * time.Second

// Check the performance of the emulator by running the machine as quickly
// as possible for the specified duration.
//
// A cpu profile, memory profile, trace (or a combination of those) is
// created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, spec *hardware.Spectrum, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var numFrames int

	runner := func() error {
		run := func(d time.Duration) error {
			ctx, cancel := context.WithTimeout(context.Background(), d)
			defer cancel()
			_, err := spec.Run(ctx, hardware.RunOptions{
				Mode:         hardware.UntilCancelled,
				TimeoutTacts: -1,
			})
			return err
		}

		if err := run(leadTime); err != nil {
			return err
		}

		startFrame := spec.FrameCount()
		if err := run(dur); err != nil {
			return err
		}
		numFrames = spec.FrameCount() - startFrame

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	fps, accuracy := CalcFPS(spec, numFrames, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)))

	return nil
}
