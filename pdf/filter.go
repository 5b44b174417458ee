// seehuhn.de/go/prepress - composing print-ready PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdf

import (
	"bytes"
	"compress/zlib"
)

// FlateStream returns a stream object holding data, compressed with the
// /FlateDecode filter.  If compress is false, data is stored as is.
func FlateStream(dict Dict, data []byte, compress bool) (*Stream, error) {
	if dict == nil {
		dict = Dict{}
	}
	if !compress {
		return &Stream{Dict: dict, Data: data}, nil
	}

	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}

	out := make(Dict, len(dict)+1)
	for key, val := range dict {
		out[key] = val
	}
	out["Filter"] = Name("FlateDecode")
	return &Stream{Dict: out, Data: buf.Bytes()}, nil
}
