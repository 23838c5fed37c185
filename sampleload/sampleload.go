// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package sampleload decodes a WAV or MP3 file into mono 8-bit unsigned
// samples, for writing into a CDF cartridge's digital-sample region
// (get_sample(), SPEC_FULL.md §4.A) by tests and tooling that want to drive
// digital-audio mode with real sampled audio rather than synthetic bytes.
package sampleload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/go2600/cdfcore/curated"
	"github.com/go2600/cdfcore/logger"
)

// NoDecoder reports that a file's extension isn't one this package knows
// how to decode.
const NoDecoder = "sampleload: no decoder for %q"

// LoadMono decodes path (a .wav or .mp3 file, selected by extension) into
// mono 8-bit unsigned samples and reports the source sample rate. Stereo
// input is reduced to its left channel, matching the teacher's getPCM.
func LoadMono(path string) (data []byte, sampleRate float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, curated.Errorf("sampleload: %v", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return loadWav(f)
	case ".mp3":
		return loadMp3(f)
	}

	return nil, 0, curated.Errorf(NoDecoder, path)
}

// loadWav decodes a WAV file via go-audio/wav, keeping only the first
// (left) channel of a multi-channel stream, and rescales PCM16 to unsigned
// 8-bit - the format the cartridge's digital-sample nibble fetcher expects.
func loadWav(r io.ReadSeeker) ([]byte, float64, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, 0, curated.Errorf("sampleload: wav: not a valid wav file")
	}

	logger.Logf(logger.Allow, "sampleload", "loading from wav file")

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, curated.Errorf("sampleload: wav: %v", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	data := make([]byte, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		data = append(data, pcm16ToUnsigned8(floatBuf.Data[i]))
	}

	return data, float64(dec.SampleRate), nil
}

// loadMp3 decodes an MP3 file via hajimehoshi/go-mp3, which always yields
// 16-bit little-endian stereo regardless of the source's channel count; only
// the left channel (the first of each 4-byte frame) is kept.
func loadMp3(r io.Reader) ([]byte, float64, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, curated.Errorf("sampleload: mp3: %v", err)
	}

	logger.Logf(logger.Allow, "sampleload", "loading from mp3 file")

	var data []byte
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		if n > 0 {
			for i := 0; i+1 < n; i += 4 {
				data = append(data, pcm16LEToUnsigned8(chunk[i], chunk[i+1]))
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, curated.Errorf("sampleload: mp3: %v", err)
		}
	}

	return data, float64(dec.SampleRate()), nil
}

// pcm16ToUnsigned8 rescales a float32 PCM sample in [-1, 1] to unsigned 8-bit.
func pcm16ToUnsigned8(v float32) byte {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return byte(int16(v*32767)>>8 + 128)
}

// pcm16LEToUnsigned8 rescales a little-endian signed 16-bit PCM sample to
// unsigned 8-bit, the same bit-shift-plus-bias the teacher's decoder applies.
func pcm16LEToUnsigned8(lo, hi byte) byte {
	f := int16(uint16(lo) | uint16(hi)<<8)
	return byte(f>>8 + 128)
}

// DurationString renders a sample count and rate as a human-readable
// duration, for tooling to report alongside LoadMono's result.
func DurationString(samples int, sampleRate float64) string {
	if sampleRate <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%.02fs", float64(samples)/sampleRate)
}
