package parse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dzjyyds666/cfua/parse/cfua"
	"github.com/smartystreets/goconvey/convey"
	"go.uber.org/zap"
)

func TestLoadAndSave(t *testing.T) {
	convey.Convey("save then load a document", t, func() {
		path := filepath.Join(t.TempDir(), "app.cfua")

		doc := cfua.New()
		doc.AppendSection("app")
		doc.AppendString("name", "demo")
		doc.AppendArray("ports", cfua.NewIntegerArray().Push(8001).Push(8002))
		convey.So(SaveFile(path, doc), convey.ShouldBeNil)

		loaded, err := LoadFile(path, cfua.WithStrictEOF())
		convey.So(err, convey.ShouldBeNil)
		convey.So(loaded.Equal(doc), convey.ShouldBeTrue)
	})

	convey.Convey("missing file is an i/o error", t, func() {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.cfua"))
		convey.So(errors.Is(err, cfua.ErrIO), convey.ShouldBeTrue)
		convey.So(errors.Is(err, os.ErrNotExist), convey.ShouldBeTrue)
	})

	convey.Convey("syntax errors pass through unchanged", t, func() {
		path := filepath.Join(t.TempDir(), "bad.cfua")
		convey.So(os.WriteFile(path, []byte("-bad: 1\n"), 0o644), convey.ShouldBeNil)
		_, err := LoadFile(path)
		convey.So(errors.Is(err, cfua.ErrLeadingHyphen), convey.ShouldBeTrue)
		convey.So(errors.Is(err, cfua.ErrIO), convey.ShouldBeFalse)
	})

	convey.Convey("unwritable documents are not saved", t, func() {
		path := filepath.Join(t.TempDir(), "out.cfua")
		doc := cfua.New()
		doc.AppendInteger("Upper", 1)
		convey.So(errors.Is(SaveFile(path, doc), cfua.ErrInvalidName), convey.ShouldBeTrue)
		_, err := os.Stat(path)
		convey.So(os.IsNotExist(err), convey.ShouldBeTrue)
	})

	convey.Convey("write failure is an i/o error", t, func() {
		path := filepath.Join(t.TempDir(), "no-such-dir", "out.cfua")
		convey.So(errors.Is(SaveFile(path, cfua.New()), cfua.ErrIO), convey.ShouldBeTrue)
	})
}

func TestSetLogger(t *testing.T) {
	convey.Convey("a nil logger falls back to a no-op logger", t, func() {
		SetLogger(nil)
		convey.So(Logger(), convey.ShouldNotBeNil)
		SetLogger(zap.NewNop())
		convey.So(Logger(), convey.ShouldNotBeNil)
	})
}
