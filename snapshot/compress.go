/*
 * compress.go, part of fc-transport.
 *
 * Copyright 2024 The fc-transport Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package snapshot

import (
	"bufio"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//compression returns the compression format implied by the file extension:
//"zstd", "gzip", or "" for plain text.
func compression(name string) string {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".zst", ".zstd":
		return "zstd"
	case ".gz":
		return "gzip"
	case ".bz2", ".xz", ".lz4", ".lzw":
		log.Printf("Compression format %s not supported. %s will be assumed to be plain text", ext, name)
		return ""
	default:
		return ""
	}
}

//*zstd.Decoder's Close doesn't return an error, so it isn't an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//decompressor wraps r so the file name's format is decompressed while reading.
func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch compression(name) {
	case "zstd":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	case "gzip":
		return gzip.NewReader(r)
	default:
		return io.NopCloser(r), nil
	}
}

//compressor wraps w so the data is compressed in the file name's format.
//Closing the returned writer does not close w.
func compressor(name string, w io.Writer) (io.WriteCloser, error) {
	switch compression(name) {
	case "zstd":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case "gzip":
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	default:
		return nopWriteCloser{w}, nil
	}
}

type fileReadCloser struct {
	io.ReadCloser
	f io.Closer
}

func (r fileReadCloser) Close() error {
	err := r.ReadCloser.Close()
	if err2 := r.f.Close(); err == nil {
		err = err2
	}
	return err
}

// Decompress wraps f, a file opened from the path name, so reading from the
// result gives the decompressed text. The format is chosen from the file
// extension, as in New. Closing the result also closes f.
func Decompress(name string, f io.ReadCloser) (io.ReadCloser, error) {
	d, err := decompressor(name, bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, err
	}
	return fileReadCloser{d, f}, nil
}
