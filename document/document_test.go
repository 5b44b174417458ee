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
	"errors"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/prepress/annotation"
	"seehuhn.de/go/prepress/font"
	"seehuhn.de/go/prepress/graphics/color"
	"seehuhn.de/go/prepress/graphics/content"
	"seehuhn.de/go/prepress/graphics/content/builder"
	"seehuhn.de/go/prepress/graphics/image"
	"seehuhn.de/go/prepress/pdf"
)

func testImage(t *testing.T, w, h int, fill byte) *image.Image {
	t.Helper()
	pix := bytes.Repeat([]byte{fill}, 3*w*h)
	img, err := image.New(w, h, color.FamilyDeviceRGB, pix)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func findOp(stm content.Stream, name content.OpName) *content.Operator {
	for i := range stm {
		if stm[i].Name == name {
			return &stm[i]
		}
	}
	return nil
}

func opNumbers(t *testing.T, op *content.Operator) []float64 {
	t.Helper()
	if op == nil {
		t.Fatal("operator not found")
	}
	res := make([]float64, len(op.Args))
	for i, arg := range op.Args {
		x, ok := arg.(pdf.Number)
		if !ok {
			t.Fatalf("argument %d of %s is %T", i, op.Name, arg)
		}
		res[i] = float64(x)
	}
	return res
}

func TestAddPage(t *testing.T) {
	doc := New(nil)
	cases := []pdf.Rectangle{
		{},
		{URx: 100},
		{URx: 100, URy: -5},
		{LLx: 50, URx: 50, URy: 100},
	}
	for _, box := range cases {
		_, err := doc.AddPage(box)
		var geomErr *pdf.GeometryError
		if !errors.As(err, &geomErr) {
			t.Errorf("%s: expected GeometryError, got %v", box.String(), err)
		}
	}
	if doc.NumPages() != 0 {
		t.Errorf("invalid pages were added")
	}

	p, err := doc.AddPage(Letter)
	if err != nil {
		t.Fatal(err)
	}
	if p.Document() != doc || doc.NumPages() != 1 {
		t.Error("page not attached to document")
	}
}

func TestResourcePool(t *testing.T) {
	doc := New(nil)

	n1, err := doc.AddFont(font.Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	n2, err := doc.AddFont(font.Helvetica)
	if err != nil {
		t.Fatal(err)
	}
	if n1 != "F1" || n2 != "F1" {
		t.Errorf("font names %q %q", n1, n2)
	}

	names := make([]pdf.Name, 3)
	for i, img := range []*image.Image{
		testImage(t, 2, 2, 0x80),
		testImage(t, 2, 2, 0x80),
		testImage(t, 2, 2, 0xFF),
	} {
		names[i], err = doc.AddImage(img)
		if err != nil {
			t.Fatal(err)
		}
	}
	if d := cmp.Diff([]pdf.Name{"Im1", "Im1", "Im2"}, names); d != "" {
		t.Errorf("image names (-want +got):\n%s", d)
	}

	_, err = doc.AddFont(nil)
	var resErr *pdf.ResourceError
	if !errors.As(err, &resErr) {
		t.Errorf("nil font: expected ResourceError, got %v", err)
	}
}

func TestEdit(t *testing.T) {
	doc := New(nil)
	p, err := doc.AddPage(Letter)
	if err != nil {
		t.Fatal(err)
	}

	errTest := errors.New("test")
	err = p.Edit(func(b *builder.Builder) error {
		b.Rectangle(10, 10, 20, 20)
		return errTest
	})
	if err != errTest {
		t.Errorf("expected test error, got %v", err)
	}

	err = p.Edit(func(b *builder.Builder) error {
		b.TextBegin()
		return nil
	})
	var stateErr *pdf.StateError
	if !errors.As(err, &stateErr) {
		t.Errorf("open text object: expected StateError, got %v", err)
	}

	err = p.Edit(func(b *builder.Builder) error {
		b.Rectangle(0, 0, -1, 1)
		return nil
	})
	var geomErr *pdf.GeometryError
	if !errors.As(err, &geomErr) {
		t.Errorf("negative rectangle: expected GeometryError, got %v", err)
	}

	if len(p.Content) != 0 {
		t.Fatalf("failed sessions modified the page: %v", p.Content)
	}

	err = p.Edit(func(b *builder.Builder) error {
		b.Rectangle(10, 10, 20, 20)
		b.Fill()
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Content) != 2 {
		t.Errorf("expected 2 operators, got %d", len(p.Content))
	}
}

func TestImageSize(t *testing.T) {
	cases := []struct {
		size   Size
		px, py int
		w, h   float64
		fail   bool
	}{
		{DPI(144), 288, 288, 144, 144, false},
		{DPI(72), 100, 50, 100, 50, false},
		{DPI(0), 10, 10, 0, 0, true},
		{DPI(-300), 10, 10, 0, 0, true},
		{Box{Width: 100}, 200, 100, 100, 50, false},
		{Box{Height: 100}, 200, 100, 200, 100, false},
		{Box{}, 200, 100, 200, 100, false},
		{Box{Width: 30, Height: 40}, 200, 100, 30, 40, false},
		{Box{Width: -1}, 200, 100, 0, 0, true},
	}
	for i, test := range cases {
		w, h, err := test.size.imageSize(test.px, test.py)
		if test.fail {
			var geomErr *pdf.GeometryError
			if !errors.As(err, &geomErr) {
				t.Errorf("%d: expected GeometryError, got %v", i, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%d: %v", i, err)
			continue
		}
		if w != test.w || h != test.h {
			t.Errorf("%d: expected %gx%g, got %gx%g", i, test.w, test.h, w, h)
		}
	}
}

func TestInsertImage(t *testing.T) {
	doc := New(nil)
	p, err := doc.AddPage(Letter)
	if err != nil {
		t.Fatal(err)
	}
	img := testImage(t, 288, 144, 0)
	err = p.InsertImage(img, 10, 20, DPI(144))
	if err != nil {
		t.Fatal(err)
	}
	got := opNumbers(t, findOp(p.Content, content.OpTransform))
	if d := cmp.Diff([]float64{144, 0, 0, 72, 10, 20}, got); d != "" {
		t.Errorf("image matrix (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]pdf.Name{"Im1"}, p.Resources.XObjectNames()); d != "" {
		t.Errorf("page resources (-want +got):\n%s", d)
	}
}

func TestFailedInsertKeepsPoolClean(t *testing.T) {
	doc := New(nil)
	p, err := doc.AddPage(Letter)
	if err != nil {
		t.Fatal(err)
	}

	err = p.InsertImage(testImage(t, 4, 4, 1), 0, 0, Box{Width: -1})
	var geomErr *pdf.GeometryError
	if !errors.As(err, &geomErr) {
		t.Errorf("negative box: expected GeometryError, got %v", err)
	}
	err = p.InsertImage(testImage(t, 4, 4, 2), math.NaN(), 0, DPI(72))
	if !errors.As(err, &geomErr) {
		t.Errorf("NaN position: expected GeometryError, got %v", err)
	}
	err = p.InsertTextAt("中", 10, 10, font.Helvetica, 12, color.Black)
	var resErr *pdf.ResourceError
	if !errors.As(err, &resErr) {
		t.Errorf("unencodable text: expected ResourceError, got %v", err)
	}
	err = p.InsertTextRotated("x", TextBox{}, font.Helvetica, -1, color.Black)
	if !errors.As(err, &geomErr) {
		t.Errorf("negative font size: expected GeometryError, got %v", err)
	}

	if len(doc.pool.fontOrder) != 0 || len(doc.pool.imageOrder) != 0 {
		t.Errorf("failed calls left resources: fonts %v, images %v",
			doc.pool.fontOrder, doc.pool.imageOrder)
	}
	if len(p.Content) != 0 {
		t.Errorf("failed calls left %d operators", len(p.Content))
	}

	// resources used by earlier calls survive a later failure
	if err := p.InsertTextAt("a", 10, 10, font.Helvetica, 12, color.Black); err != nil {
		t.Fatal(err)
	}
	_ = p.InsertTextAt("中", 10, 10, font.Helvetica, 12, color.Black)
	if d := cmp.Diff([]pdf.Name{"F1"}, doc.pool.fontOrder); d != "" {
		t.Errorf("fonts (-want +got):\n%s", d)
	}
	if f, ok := doc.pool.Font("F1"); !ok || f != font.Helvetica {
		t.Error("font F1 was removed")
	}
}

func TestInsertText(t *testing.T) {
	doc := New(nil)
	p, err := doc.AddPage(Letter)
	if err != nil {
		t.Fatal(err)
	}
	box := TextBox{X: 10, Y: 50, Width: 200, Height: 20}
	err = p.InsertText("Hi", box, font.Helvetica, 12, color.Black)
	if err != nil {
		t.Fatal(err)
	}

	tw, _ := font.MeasureText(font.Helvetica, "Hi", 12)
	want := []float64{10 + (200-tw)/2, 50}
	got := opNumbers(t, findOp(p.Content, content.OpTextMoveOffset))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("text position (-want +got):\n%s", d)
	}
	if show := findOp(p.Content, content.OpTextShow); show == nil || show.Text != "Hi" {
		t.Errorf("text not shown: %v", show)
	}

	err = p.InsertTextAt("x", 1, 2, font.Helvetica, 0, color.Black)
	var geomErr *pdf.GeometryError
	if !errors.As(err, &geomErr) {
		t.Errorf("zero font size: expected GeometryError, got %v", err)
	}
}

func TestInsertTextRotated(t *testing.T) {
	doc := New(nil)
	p, err := doc.AddPage(Letter)
	if err != nil {
		t.Fatal(err)
	}
	box := TextBox{X: 100, Y: 200, Width: 50}
	err = p.InsertTextRotated("Test", box, font.Helvetica, 10, color.Black)
	if err != nil {
		t.Fatal(err)
	}

	tw, th := font.MeasureText(font.Helvetica, "Test", 10)
	cx := 100 + (50-tw)/2 + tw/2
	cy := 200 + th/2 + th/2
	want := []float64{0, 1, -1, 0, cx, cy}
	got := opNumbers(t, findOp(p.Content, content.OpTextSetMatrix))
	for i := range want {
		if math.Abs(want[i]-got[i]) > 1e-3 {
			t.Fatalf("text matrix: expected %v, got %v", want, got)
		}
	}
}

func buildDocument(t *testing.T, opt *Options) *Document {
	t.Helper()
	doc := New(opt)
	p, err := doc.AddPage(Letter)
	if err != nil {
		t.Fatal(err)
	}
	err = p.InsertTextAt("Hello", 40, 700, font.Helvetica, 12, color.Black)
	if err != nil {
		t.Fatal(err)
	}
	err = p.InsertImage(testImage(t, 4, 4, 0x40), 100, 100, Box{Width: 50})
	if err != nil {
		t.Fatal(err)
	}
	c := annotation.NewCircle(10, 10, 2.5)
	c.Color = color.Registration
	c.Flags = annotation.FlagPrint
	if err := p.AddAnnotation(c); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestSerialize(t *testing.T) {
	doc := buildDocument(t, &Options{Version: pdf.V1_7, Title: "Test"})

	buf1 := &bytes.Buffer{}
	if _, err := doc.WriteTo(buf1); err != nil {
		t.Fatal(err)
	}
	buf2 := &bytes.Buffer{}
	if _, err := doc.WriteTo(buf2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Error("repeated writes differ")
	}

	out := buf1.String()
	if !strings.HasPrefix(out, "%PDF-1.7\n") {
		t.Errorf("wrong header %q", out[:10])
	}
	if !strings.HasSuffix(out, "%%EOF\n") {
		t.Error("missing end of file marker")
	}
	if !strings.Contains(out, "(Hello) Tj") {
		t.Error("page content missing")
	}

	order := []string{
		"/Type /Catalog",
		"/Type /Pages",
		"/Type /Page\n",
		"/Subtype /Circle",
		"/BaseFont /Helvetica",
		"/Subtype /Image",
		"/Type /Metadata",
		"/Producer",
		"trailer",
	}
	last := -1
	for _, key := range order {
		pos := strings.Index(out, key)
		if pos < 0 {
			t.Errorf("%q not found", key)
			continue
		}
		if pos < last {
			t.Errorf("%q is out of order", key)
		}
		last = pos
	}

	// a second, identical document gives the same bytes
	buf3 := &bytes.Buffer{}
	if _, err := buildDocument(t, &Options{Version: pdf.V1_7, Title: "Test"}).WriteTo(buf3); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf1.Bytes(), buf3.Bytes()) {
		t.Error("output is not deterministic")
	}
}

func TestLifecycle(t *testing.T) {
	doc := New(nil)
	err := doc.Finalize()
	var stateErr *pdf.StateError
	if !errors.As(err, &stateErr) {
		t.Errorf("empty document: expected StateError, got %v", err)
	}

	doc = buildDocument(t, nil)
	p := doc.Pages()[0]
	if err := doc.Finalize(); err != nil {
		t.Fatal(err)
	}
	if err := doc.Finalize(); err != nil {
		t.Errorf("second Finalize: %v", err)
	}
	if !doc.IsFinalized() {
		t.Error("document not finalized")
	}

	mutations := map[string]func() error{
		"AddPage": func() error {
			_, err := doc.AddPage(Letter)
			return err
		},
		"AddFont": func() error {
			_, err := doc.AddFont(font.Helvetica)
			return err
		},
		"Edit": func() error {
			return p.Edit(func(b *builder.Builder) error { return nil })
		},
		"InsertTextAt": func() error {
			return p.InsertTextAt("x", 0, 0, font.Helvetica, 10, color.Black)
		},
		"Protect": func() error {
			return doc.Protect("a", "b", Permissions{})
		},
	}
	for name, fn := range mutations {
		if err := fn(); !errors.As(err, &stateErr) {
			t.Errorf("%s after Finalize: expected StateError, got %v", name, err)
		}
	}
}

func TestPermissionBits(t *testing.T) {
	cases := []struct {
		perm Permissions
		set  uint32
	}{
		{Permissions{}, 0},
		{Permissions{Print: true}, 1<<2 | 1<<11},
		{Permissions{Modify: true}, 1 << 3},
		{Permissions{Extract: true}, 1<<4 | 1<<9},
		{Permissions{Annotate: true}, 1<<5 | 1<<8},
		{Permissions{Assemble: true}, 1 << 10},
	}
	const userBits = 0xF3C
	for _, test := range cases {
		p := uint32(test.perm.P())
		if p&userBits != test.set {
			t.Errorf("%+v: expected bits %#x, got %#x", test.perm, test.set, p&userBits)
		}
		if p&0xFFFFF0C0 != 0xFFFFF0C0 || p&3 != 0 {
			t.Errorf("%+v: reserved bits wrong in %#x", test.perm, p)
		}
	}
}

func TestProtectPasswords(t *testing.T) {
	doc := New(nil)
	err := doc.Protect("", "", Permissions{})
	var resErr *pdf.ResourceError
	if !errors.As(err, &resErr) {
		t.Errorf("no passwords: expected ResourceError, got %v", err)
	}
	err = doc.Protect("owner", "bad\u0007password", Permissions{})
	if !errors.As(err, &resErr) {
		t.Errorf("control character: expected ResourceError, got %v", err)
	}

	err = doc.Protect("", "I\u00ADX", Permissions{})
	if err != nil {
		t.Fatal(err)
	}
	if doc.policy.user != "IX" || doc.policy.owner != "IX" {
		t.Errorf("passwords not normalized: %q %q", doc.policy.user, doc.policy.owner)
	}
}

// pEntry matches integer /P entries.  The second group is non-empty for
// the /P page references of annotations.
var pEntry = regexp.MustCompile(`/P\s*(-?\d+)(\s+\d+\s+R)?`)

func TestEncryption(t *testing.T) {
	for _, perm := range []Permissions{{}, {Print: true, Extract: true}} {
		checkEncryption(t, perm)
	}
}

func checkEncryption(t *testing.T, perm Permissions) {
	t.Helper()
	doc := buildDocument(t, nil)
	if err := doc.Protect("owner", "user", perm); err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if _, err := doc.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "/Encrypt") {
		t.Fatal("output is not encrypted")
	}
	var values []string
	for _, m := range pEntry.FindAllStringSubmatch(out, -1) {
		if m[2] == "" {
			values = append(values, m[1])
		}
	}
	if len(values) != 1 {
		t.Fatalf("expected one /P permission entry, found %q", values)
	}
	p, err := strconv.ParseInt(values[0], 10, 64)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := int32(p), perm.P(); got != want {
		t.Errorf("permissions: expected %d, got %d", want, got)
	}

	again := &bytes.Buffer{}
	if _, err := doc.WriteTo(again); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), again.Bytes()) {
		t.Error("encrypted output changed between writes")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")

	doc := buildDocument(t, nil)
	if err := doc.Save(context.Background(), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if _, err := doc.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, buf.Bytes()) {
		t.Error("saved file differs from WriteTo output")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	other := filepath.Join(dir, "cancelled.pdf")
	if err := buildDocument(t, nil).Save(ctx, other); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("unexpected files left behind: %v", entries)
	}

	err = doc.Save(context.Background(), filepath.Join(dir, "missing", "x.pdf"))
	var ioErr *pdf.IOError
	if !errors.As(err, &ioErr) {
		t.Errorf("expected IOError, got %v", err)
	}
}
