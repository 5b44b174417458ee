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

package document

import (
	"bytes"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"seehuhn.de/go/prepress/metadata"
	"seehuhn.de/go/prepress/pdf"
)

// Finalize serializes the document.  After a successful call, the document
// can no longer be modified.  Calling Finalize again has no effect.
func (doc *Document) Finalize() error {
	if doc.finalized {
		return nil
	}
	if len(doc.pages) == 0 {
		return pdf.StateErrorf("Finalize", "document has no pages")
	}
	for i, p := range doc.pages {
		if err := p.Content.Validate(); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
	}

	data, err := doc.serialize()
	if err != nil {
		return err
	}
	if doc.policy != nil {
		data, err = doc.policy.encrypt(data)
		if err != nil {
			return err
		}
		doc.log.Debug("encrypted", "bytes", len(data))
	}

	doc.data = data
	doc.finalized = true
	return nil
}

// WriteTo writes the PDF file to w, finalizing the document if needed.
// Repeated calls write identical bytes.
// This implements the [io.WriterTo] interface.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	err := doc.Finalize()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(doc.data)
	if err != nil {
		return int64(n), &pdf.IOError{Op: "write", Err: err}
	}
	return int64(n), nil
}

// saveChunk is the amount of data written between checks for cancellation.
const saveChunk = 64 * 1024

// Save writes the PDF file to the named file, finalizing the document if
// needed.  The data is first written to a temporary file in the same
// directory, which is then renamed.  If an error occurs or ctx is
// cancelled, the target file is not touched.
func (doc *Document) Save(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := doc.Finalize()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &pdf.IOError{Op: "save", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	for data := doc.data; len(data) > 0; {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := min(len(data), saveChunk)
		_, err := tmp.Write(data[:n])
		if err != nil {
			return &pdf.IOError{Op: "save", Path: path, Err: err}
		}
		data = data[n:]
	}
	if err := tmp.Sync(); err != nil {
		return &pdf.IOError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &pdf.IOError{Op: "save", Path: path, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &pdf.IOError{Op: "save", Path: path, Err: err}
	}
	success = true

	doc.log.Debug("saved", "path", path, "bytes", len(doc.data))
	return nil
}

// serialize writes the document to memory.
//
// Objects are written in the following order: catalog, page tree, pages
// (each followed by its content stream and annotations), fonts, images,
// metadata, output intent, and document information dictionary.
func (doc *Document) serialize() ([]byte, error) {
	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, doc.opt.Version)
	if err != nil {
		return nil, err
	}
	compress := doc.opt.Compress

	catalogRef := w.Alloc()
	pagesRef := w.Alloc()
	pageRefs := make([]pdf.Reference, len(doc.pages))
	for i := range pageRefs {
		pageRefs[i] = w.Alloc()
	}
	fontRefs := make(map[pdf.Name]pdf.Reference)
	for _, name := range doc.pool.fontOrder {
		fontRefs[name] = w.Alloc()
	}
	imageRefs := make(map[pdf.Name]pdf.Reference)
	for _, name := range doc.pool.imageOrder {
		imageRefs[name] = w.Alloc()
	}
	info := doc.opt.info()
	var metaRef pdf.Reference
	if !info.IsZero() {
		metaRef = w.Alloc()
	}
	var oiRef pdf.Reference
	if doc.opt.OutputIntent != nil {
		oiRef = w.Alloc()
	}
	infoRef := w.Alloc()

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": pagesRef,
	}
	if metaRef != 0 {
		catalog["Metadata"] = metaRef
	}
	if oiRef != 0 {
		catalog["OutputIntents"] = pdf.Array{oiRef}
	}
	if err := w.Put(catalogRef, catalog); err != nil {
		return nil, err
	}

	kids := make(pdf.Array, len(pageRefs))
	for i, ref := range pageRefs {
		kids[i] = ref
	}
	err = w.Put(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(pageRefs)),
	})
	if err != nil {
		return nil, err
	}

	fontText := make(map[pdf.Name][]rune)
	for i, p := range doc.pages {
		err := doc.writePage(w, p, pageRefs[i], pagesRef, fontRefs, imageRefs, compress)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		for name, text := range p.Content.FontText() {
			fontText[name] = append(fontText[name], text...)
		}
	}

	for _, name := range doc.pool.fontOrder {
		f := doc.pool.fonts[name]
		if err := f.Embed(w, fontRefs[name], fontText[name]); err != nil {
			return nil, fmt.Errorf("font %s: %w", name, err)
		}
	}
	for _, name := range doc.pool.imageOrder {
		img := doc.pool.images[name]
		if err := img.Embed(w, imageRefs[name]); err != nil {
			return nil, fmt.Errorf("image %s: %w", name, err)
		}
	}

	if metaRef != 0 {
		packet, err := info.Packet()
		if err != nil {
			return nil, err
		}
		meta := &metadata.Stream{Data: packet}
		if err := meta.Embed(w, metaRef, false); err != nil {
			return nil, err
		}
	}
	if oiRef != 0 {
		if err := doc.opt.OutputIntent.Embed(w, oiRef, compress); err != nil {
			return nil, err
		}
	}
	if err := w.Put(infoRef, info.AsDict()); err != nil {
		return nil, err
	}

	sum := md5.Sum(buf.Bytes())
	id := pdf.String(sum[:])
	err = w.Close(pdf.Dict{
		"Root": catalogRef,
		"Info": infoRef,
		"ID":   pdf.Array{id, id},
	})
	if err != nil {
		return nil, err
	}

	doc.log.Debug("serialized",
		"pages", len(doc.pages),
		"objects", w.NumObjects(),
		"bytes", buf.Len())
	return buf.Bytes(), nil
}

func (doc *Document) writePage(w *pdf.Writer, p *Page, ref, parent pdf.Reference,
	fontRefs, imageRefs map[pdf.Name]pdf.Reference, compress bool) error {
	contentRef := w.Alloc()
	annotRefs := make(pdf.Array, len(p.Annotations))
	for i := range p.Annotations {
		annotRefs[i] = w.Alloc()
	}

	resources := pdf.Dict{}
	if names := p.Resources.FontNames(); len(names) > 0 {
		fonts := pdf.Dict{}
		for _, name := range names {
			fonts[name] = fontRefs[name]
		}
		resources["Font"] = fonts
	}
	if names := p.Resources.XObjectNames(); len(names) > 0 {
		xobjects := pdf.Dict{}
		for _, name := range names {
			xobjects[name] = imageRefs[name]
		}
		resources["XObject"] = xobjects
	}

	mediaBox := p.MediaBox
	pageDict := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    parent,
		"MediaBox":  &mediaBox,
		"Resources": resources,
		"Contents":  contentRef,
	}
	if len(annotRefs) > 0 {
		pageDict["Annots"] = annotRefs
	}
	if err := w.Put(ref, pageDict); err != nil {
		return err
	}

	body := &bytes.Buffer{}
	if err := p.Content.Write(body); err != nil {
		return err
	}
	stm, err := pdf.FlateStream(nil, body.Bytes(), compress)
	if err != nil {
		return err
	}
	if err := w.Put(contentRef, stm); err != nil {
		return err
	}

	for i, a := range p.Annotations {
		dict, err := a.Encode(w)
		if err != nil {
			return fmt.Errorf("%s annotation: %w", a.AnnotationType(), err)
		}
		dict["P"] = ref
		if err := w.Put(annotRefs[i].(pdf.Reference), dict); err != nil {
			return err
		}
	}
	return nil
}
